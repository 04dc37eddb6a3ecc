package handlers

import (
	"encoding/base64"
	"errors"
	"io"
	"strings"

	"agrimind/app"
	"agrimind/middleware"
	"agrimind/models"
	"agrimind/services"

	"github.com/gofiber/fiber/v2"
)

const maxImageBytes = 10 * 1024 * 1024

// DiagnoseImage accepts a plant photo and returns a stored diagnosis
func DiagnoseImage(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil {
			return badRequest(c, "No image file provided")
		}

		if file.Size > maxImageBytes {
			return badRequest(c, "Image must be smaller than 10MB")
		}

		contentType := file.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			return badRequest(c, "File must be an image")
		}

		src, err := file.Open()
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read uploaded image", err)
		}
		defer src.Close()

		raw, err := io.ReadAll(src)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to read uploaded image", err)
		}

		cropType := c.FormValue("crop_type")
		location := c.FormValue("location")
		userID := middleware.GetUserID(c)

		diagnosis, err := a.Diagnosis.DiagnoseImage(
			c.Context(),
			userID,
			base64.StdEncoding.EncodeToString(raw),
			cropType,
			location,
		)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to analyze plant image", err)
		}

		return created(c, fiber.Map{"diagnosis": diagnosis})
	}
}

// GetDiagnoses lists the user's diagnoses, most recent first
func GetDiagnoses(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		condition := models.Condition(c.Query("condition"))
		if condition != "" && !condition.Valid() {
			return badRequest(c, "condition must be one of: healthy, warning, critical")
		}

		userID := middleware.GetUserID(c)

		diagnoses, err := a.Diagnosis.List(userID, condition)
		if err != nil {
			return serverErrorWithDetails(c, "Failed to fetch diagnoses", err)
		}

		return success(c, fiber.Map{"diagnoses": diagnoses})
	}
}

// GetDiagnosis retrieves a single diagnosis by ID
func GetDiagnosis(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		diagnosis, err := a.Diagnosis.Get(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrDiagnosisNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Diagnosis not found"})
			}
			return serverErrorWithDetails(c, "Failed to fetch diagnosis", err)
		}

		return success(c, fiber.Map{"diagnosis": diagnosis})
	}
}
