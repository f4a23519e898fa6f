package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mesikahq/family-health/internal/activity"
	"github.com/mesikahq/family-health/internal/appointment"
	"github.com/mesikahq/family-health/internal/auth"
	"github.com/mesikahq/family-health/internal/family"
	"github.com/mesikahq/family-health/internal/healthrecord"
	"github.com/mesikahq/family-health/internal/medication"
	"github.com/mesikahq/family-health/internal/profile"
)

type Handler struct {
	authService        auth.Service
	familyService      family.Service
	medicationService  medication.Service
	appointmentService appointment.Service
	recordService      healthrecord.Service
	profileService     profile.Service
	activityService    activity.Service
}

func NewHandler(
	authService auth.Service,
	familyService family.Service,
	medicationService medication.Service,
	appointmentService appointment.Service,
	recordService healthrecord.Service,
	profileService profile.Service,
	activityService activity.Service,
) *Handler {
	return &Handler{
		authService:        authService,
		familyService:      familyService,
		medicationService:  medicationService,
		appointmentService: appointmentService,
		recordService:      recordService,
		profileService:     profileService,
		activityService:    activityService,
	}
}

var notFoundErrs = []error{
	family.ErrNotFound,
	medication.ErrNotFound,
	appointment.ErrNotFound,
	healthrecord.ErrNotFound,
	profile.ErrNotFound,
}

// writeError maps service errors onto HTTP statuses: missing records are
// 404, everything else that bubbles out of validation is 400.
func writeError(c *gin.Context, err error) {
	for _, nf := range notFoundErrs {
		if errors.Is(err, nf) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// Authentication

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.authService.Logout(c.Request.Context()); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// User profile

func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req profile.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p, err := h.profileService.Update(c.Request.Context(), &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// Family members

func (h *Handler) ListFamilyMembers(c *gin.Context) {
	members, err := h.familyService.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *Handler) CreateFamilyMember(c *gin.Context) {
	var m family.FamilyMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.familyService.Create(c.Request.Context(), &m); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) GetFamilyMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	m, err := h.familyService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) GetFamilyMemberCounts(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	counts, err := h.familyService.Counts(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *Handler) UpdateFamilyMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var m family.FamilyMember
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ID = id

	if err := h.familyService.Update(c.Request.Context(), &m); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteFamilyMember(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.familyService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Medications

// ListMedications filters by family member when family_member_id is set;
// absent or "all" returns every medication.
func (h *Handler) ListMedications(c *gin.Context) {
	memberID, err := memberIDQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family_member_id"})
		return
	}

	meds, err := h.medicationService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, meds)
}

func (h *Handler) GetMedicationSummary(c *gin.Context) {
	memberID, err := memberIDQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family_member_id"})
		return
	}

	sum, err := h.medicationService.Summarize(c.Request.Context(), memberID, time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) CreateMedication(c *gin.Context) {
	var m medication.Medication
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.medicationService.Create(c.Request.Context(), &m); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) GetMedication(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	m, err := h.medicationService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateMedication(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var m medication.Medication
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m.ID = id

	if err := h.medicationService.Update(c.Request.Context(), &m); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}

func (h *Handler) SetMedicationActive(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	m, err := h.medicationService.SetActive(c.Request.Context(), id, *req.Active)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedication(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.medicationService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Appointments

func (h *Handler) ListAppointments(c *gin.Context) {
	var filters appointment.Filters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appts, err := h.appointmentService.List(c.Request.Context(), filters)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, appts)
}

func (h *Handler) GetAppointmentSummary(c *gin.Context) {
	sum, err := h.appointmentService.Summarize(c.Request.Context(), time.Now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var a appointment.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.appointmentService.Create(c.Request.Context(), &a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	a, err := h.appointmentService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) UpdateAppointment(c *gin.Context) {
	var a appointment.Appointment
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a.ID = c.Param("id")

	if err := h.appointmentService.Update(c.Request.Context(), &a); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

type ChangeStatusRequest struct {
	Status appointment.Status `json:"status" binding:"required"`
}

func (h *Handler) ChangeAppointmentStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	a, err := h.appointmentService.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	if err := h.appointmentService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Health records

func (h *Handler) ListHealthRecords(c *gin.Context) {
	memberID, err := memberIDQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid family_member_id"})
		return
	}

	records, err := h.recordService.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *Handler) CreateHealthRecord(c *gin.Context) {
	var r healthrecord.HealthRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.recordService.Create(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *Handler) GetHealthRecord(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	r, err := h.recordService.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) UpdateHealthRecord(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var r healthrecord.HealthRecord
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.ID = id

	if err := h.recordService.Update(c.Request.Context(), &r); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *Handler) DeleteHealthRecord(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.recordService.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Dashboard

type DashboardStats struct {
	FamilyMembers     int                  `json:"family_members"`
	EmergencyContacts int                  `json:"emergency_contacts"`
	HealthRecords     int                  `json:"health_records"`
	Medications       *medication.Summary  `json:"medications"`
	Appointments      *appointment.Summary `json:"appointments"`
}

// GetDashboardStats computes the landing-page tiles from the live lists.
func (h *Handler) GetDashboardStats(c *gin.Context) {
	ctx := c.Request.Context()

	members, err := h.familyService.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get family members"})
		return
	}

	records, err := h.recordService.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get health records"})
		return
	}

	medSummary, err := h.medicationService.Summarize(ctx, nil, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize medications"})
		return
	}

	apptSummary, err := h.appointmentService.Summarize(ctx, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to summarize appointments"})
		return
	}

	emergency := 0
	for _, m := range members {
		if m.EmergencyContact {
			emergency++
		}
	}

	c.JSON(http.StatusOK, DashboardStats{
		FamilyMembers:     len(members),
		EmergencyContacts: emergency,
		HealthRecords:     len(records),
		Medications:       medSummary,
		Appointments:      apptSummary,
	})
}

// GetRecentActivities reads the feed, newest first. limit defaults to 20;
// an explicit 0 returns no events.
func (h *Handler) GetRecentActivities(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if parsed == 0 {
			c.JSON(http.StatusOK, []activity.Event{})
			return
		}
		limit = parsed
	}

	events, err := h.activityService.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read activity feed"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// Helpers

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// memberIDQuery reads the optional family_member_id query parameter. Empty
// or "all" means all members (nil).
func memberIDQuery(c *gin.Context) (*int64, error) {
	raw := c.Query("family_member_id")
	if raw == "" || raw == "all" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
