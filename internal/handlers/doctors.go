// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"healthportal/internal/models"
	"healthportal/internal/store"
)

// Doctors serves the doctor directory.
type Doctors struct {
	doctors *store.DoctorStore
}

// NewDoctors creates the doctor handler group.
func NewDoctors(doctors *store.DoctorStore) *Doctors {
	return &Doctors{doctors: doctors}
}

// List handles GET /doctors.
func (h *Doctors) List(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.doctors.List(r.Context())
	if err != nil {
		slog.Error("list doctors", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch doctors")
		return
	}
	if doctors == nil {
		doctors = []models.Doctor{}
	}
	respondData(w, http.StatusOK, doctors)
}

// Get handles GET /doctors/{clerkUserId}.
func (h *Doctors) Get(w http.ResponseWriter, r *http.Request) {
	doctor, err := h.doctors.FindByClerkID(r.Context(), chi.URLParam(r, "clerkUserId"))
	if err != nil {
		slog.Error("find doctor", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch doctor")
		return
	}
	if doctor == nil {
		respondError(w, http.StatusNotFound, "Doctor not found")
		return
	}
	respondData(w, http.StatusOK, doctor)
}
