package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/common/timezone"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/domain"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/internal/service"
	"github.com/D-PPAW-TI503P-2025/PRKPAW-20230140156/pkg/validator"
)

type PresensiHandler struct {
	presensiService *service.PresensiService
	validate        *validator.Validator
	queryTimeout    time.Duration
}

func NewPresensiHandler(presensiService *service.PresensiService, validate *validator.Validator, queryTimeout time.Duration) *PresensiHandler {
	return &PresensiHandler{
		presensiService: presensiService,
		validate:        validate,
		queryTimeout:    queryTimeout,
	}
}

// PresensiResponse renders a record for clients: check-in/check-out stamps in
// the fixed Jakarta timezone, bookkeeping stamps in RFC 3339.
type PresensiResponse struct {
	ID        string  `json:"id"`
	UserID    string  `json:"userId"`
	Nama      string  `json:"nama"`
	CheckIn   string  `json:"checkIn"`
	CheckOut  *string `json:"checkOut"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

func toPresensiResponse(p *domain.Presensi) PresensiResponse {
	resp := PresensiResponse{
		ID:        p.ID.String(),
		UserID:    p.UserID.String(),
		Nama:      p.Nama,
		CheckIn:   timezone.Format(p.CheckIn),
		CreatedAt: p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: p.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if p.CheckOut != nil {
		checkOut := timezone.Format(*p.CheckOut)
		resp.CheckOut = &checkOut
	}
	return resp
}

// identityFromLocals rebuilds the verified caller set by the auth middleware
func identityFromLocals(c *fiber.Ctx) (domain.Identity, bool) {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return domain.Identity{}, false
	}

	nama, _ := c.Locals("nama").(string)
	role, _ := c.Locals("role").(string)

	return domain.Identity{UserID: userID, Nama: nama, Role: role}, true
}

// logEvidenceFields notes the location and photo evidence the client sent.
// The fields are accepted but deliberately not persisted; storage of evidence
// belongs to a future attachment component.
func logEvidenceFields(c *fiber.Ctx, identity domain.Identity) {
	latitude := c.FormValue("latitude")
	longitude := c.FormValue("longitude")
	if latitude != "" || longitude != "" {
		log.Printf("[PRESENSI_HANDLER] %s mengirim lokasi (%s, %s)", identity.Nama, latitude, longitude)
	}
	if file, err := c.FormFile("image"); err == nil && file != nil {
		log.Printf("[PRESENSI_HANDLER] %s mengirim foto %s (%d bytes)", identity.Nama, file.Filename, file.Size)
	}
}

// CheckIn opens a new attendance cycle for the caller
// POST /api/presensi/check-in
func (h *PresensiHandler) CheckIn(c *fiber.Ctx) error {
	identity, ok := identityFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak ditemukan.",
		})
	}

	logEvidenceFields(c, identity)

	ctx, cancel := context.WithTimeout(c.Context(), h.queryTimeout)
	defer cancel()

	presensi, err := h.presensiService.CheckIn(ctx, identity)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Anda sudah melakukan check-in hari ini.",
			})
		}
		log.Printf("[PRESENSI_HANDLER] check-in failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Terjadi kesalahan pada server.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": fmt.Sprintf("Halo %s, check-in berhasil pukul %s WIB",
			identity.Nama, timezone.FormatClock(presensi.CheckIn)),
		"data": toPresensiResponse(presensi),
	})
}

// CheckOut closes the caller's active cycle
// POST /api/presensi/check-out
func (h *PresensiHandler) CheckOut(c *fiber.Ctx) error {
	identity, ok := identityFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak ditemukan.",
		})
	}

	logEvidenceFields(c, identity)

	ctx, cancel := context.WithTimeout(c.Context(), h.queryTimeout)
	defer cancel()

	presensi, err := h.presensiService.CheckOut(ctx, identity)
	if err != nil {
		if errors.Is(err, service.ErrNoActivePresensi) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Tidak ditemukan catatan check-in aktif untuk Anda.",
			})
		}
		log.Printf("[PRESENSI_HANDLER] check-out failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Terjadi kesalahan pada server.",
		})
	}

	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Selamat jalan %s, check-out berhasil pukul %s WIB",
			identity.Nama, timezone.FormatClock(*presensi.CheckOut)),
		"data": toPresensiResponse(presensi),
	})
}

// Delete removes a record owned by the caller
// DELETE /api/presensi/:id
func (h *PresensiHandler) Delete(c *fiber.Ctx) error {
	identity, ok := identityFromLocals(c)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Token tidak ditemukan.",
		})
	}

	presensiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Catatan presensi tidak ditemukan.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.queryTimeout)
	defer cancel()

	presensi, err := h.presensiService.Delete(ctx, identity, presensiID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPresensiNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Catatan presensi tidak ditemukan.",
			})
		case errors.Is(err, service.ErrNotOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Anda tidak memiliki izin untuk menghapus catatan ini.",
			})
		default:
			log.Printf("[PRESENSI_HANDLER] delete failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Terjadi kesalahan pada server.",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Data Presensi berhasil dihapus.",
		"data":    toPresensiResponse(presensi),
	})
}

type updatePresensiRequest struct {
	CheckIn  *string `json:"checkIn" validate:"omitempty,min=1"`
	CheckOut *string `json:"checkOut" validate:"omitempty,min=1"`
	Nama     *string `json:"nama" validate:"omitempty,min=1,max=100"`
}

// Update is the administrative correction path: each supplied field
// overwrites the stored value
// PUT /api/presensi/:id
func (h *PresensiHandler) Update(c *fiber.Ctx) error {
	presensiID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Catatan presensi tidak ditemukan.",
		})
	}

	var req updatePresensiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Request body tidak valid.",
		})
	}

	if err := h.validate.Validate(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": err.Error(),
		})
	}

	patch, err := req.toPatch()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Format waktu tidak valid, gunakan format RFC 3339.",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), h.queryTimeout)
	defer cancel()

	presensi, err := h.presensiService.Correct(ctx, presensiID, patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyPatch):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Request body tidak berisi data yang valid untuk diupdate (checkIn, checkOut, atau nama).",
			})
		case errors.Is(err, service.ErrPresensiNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Catatan presensi tidak ditemukan.",
			})
		default:
			log.Printf("[PRESENSI_HANDLER] update failed: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Terjadi kesalahan pada server.",
			})
		}
	}

	return c.JSON(fiber.Map{
		"message": "Data presensi berhasil diperbarui.",
		"data":    toPresensiResponse(presensi),
	})
}

func (r updatePresensiRequest) toPatch() (service.CorrectionPatch, error) {
	patch := service.CorrectionPatch{Nama: r.Nama}

	if r.CheckIn != nil {
		t, err := time.Parse(time.RFC3339, *r.CheckIn)
		if err != nil {
			return service.CorrectionPatch{}, err
		}
		patch.CheckIn = &t
	}
	if r.CheckOut != nil {
		t, err := time.Parse(time.RFC3339, *r.CheckOut)
		if err != nil {
			return service.CorrectionPatch{}, err
		}
		patch.CheckOut = &t
	}

	return patch, nil
}
