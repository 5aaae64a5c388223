package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/everestwc/everest-backend/internal/model"
	"github.com/everestwc/everest-backend/internal/repository"
)

type fakeAppointmentStore struct {
	items     []model.Appointment
	listErr   error
	createErr error

	created []model.Appointment
}

func (f *fakeAppointmentStore) List(ctx context.Context) ([]model.Appointment, error) {
	return f.items, f.listErr
}

func (f *fakeAppointmentStore) Create(ctx context.Context, a *model.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	a.ID = uuid.New().String()
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	f.created = append(f.created, *a)
	return nil
}

func (f *fakeAppointmentStore) Update(ctx context.Context, id string, p model.AppointmentPatch) (*model.Appointment, error) {
	return nil, repository.ErrNotFound
}

func (f *fakeAppointmentStore) Delete(ctx context.Context, id string) error {
	return nil
}

func newAppointmentRouter(store *fakeAppointmentStore) *gin.Engine {
	h := NewAppointmentHandler(store, testLog)
	r := gin.New()
	r.GET("/appointments", h.List)
	r.POST("/appointments", h.Create)
	r.PUT("/appointments/:id", h.Update)
	r.DELETE("/appointments/:id", h.Delete)
	return r
}

func TestAppointmentCreate(t *testing.T) {
	t.Run("intake is created pending even when the caller says otherwise", func(t *testing.T) {
		store := &fakeAppointmentStore{}
		w := doJSON(t, newAppointmentRouter(store), http.MethodPost, "/appointments", gin.H{
			"name":   "Sita Sharma",
			"email":  "sita@example.com",
			"phone":  "+977-9812345678",
			"status": "confirmed",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		if len(store.created) != 1 {
			t.Fatalf("created %d appointments, want 1", len(store.created))
		}
		if got := store.created[0].Status; got != model.StatusPending {
			t.Errorf("status = %q, want %q", got, model.StatusPending)
		}
	})

	t.Run("fullName works as a name alias", func(t *testing.T) {
		store := &fakeAppointmentStore{}
		w := doJSON(t, newAppointmentRouter(store), http.MethodPost, "/appointments", gin.H{
			"fullName": "  Ram Thapa  ",
			"email":    "ram@example.com",
			"phone":    "9800000000",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", w.Code, w.Body.String())
		}
		if got := store.created[0].Name; got != "Ram Thapa" {
			t.Errorf("name = %q, want trimmed alias", got)
		}
	})

	t.Run("missing phone is rejected before the store", func(t *testing.T) {
		store := &fakeAppointmentStore{}
		w := doJSON(t, newAppointmentRouter(store), http.MethodPost, "/appointments", gin.H{
			"name":  "Sita Sharma",
			"email": "sita@example.com",
			"phone": "   ",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		assertMessage(t, w, "Missing required fields (name/fullName, email, phone)")
		if len(store.created) != 0 {
			t.Error("store was written despite missing fields")
		}
	})

	t.Run("store failure is a 400", func(t *testing.T) {
		store := &fakeAppointmentStore{createErr: errors.New("insert failed")}
		w := doJSON(t, newAppointmentRouter(store), http.MethodPost, "/appointments", gin.H{
			"name":  "Sita Sharma",
			"email": "sita@example.com",
			"phone": "9800000000",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		assertMessage(t, w, "Failed to create appointment")
	})
}

func TestAppointmentList(t *testing.T) {
	t.Run("returns every appointment regardless of status", func(t *testing.T) {
		store := &fakeAppointmentStore{items: []model.Appointment{
			{ID: "1", Name: "Sita", Status: "confirmed"},
			{ID: "2", Name: "Ram", Status: model.StatusPending},
		}}
		w := doJSON(t, newAppointmentRouter(store), http.MethodGet, "/appointments", nil)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		var got []model.Appointment
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("len = %d, want 2", len(got))
		}
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		store := &fakeAppointmentStore{listErr: errors.New("boom")}
		w := doJSON(t, newAppointmentRouter(store), http.MethodGet, "/appointments", nil)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", w.Code)
		}
		assertMessage(t, w, "Failed to fetch appointments")
	})
}

func TestAppointmentUpdateNotFound(t *testing.T) {
	w := doJSON(t, newAppointmentRouter(&fakeAppointmentStore{}), http.MethodPut, "/appointments/"+uuid.New().String(), gin.H{
		"status": "confirmed",
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	assertMessage(t, w, "Appointment not found")
}
