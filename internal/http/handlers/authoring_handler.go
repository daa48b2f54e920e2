package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	applog "mzansimarket/internal/log"
	"mzansimarket/internal/services"
)

// GenerationFailed is the generic retryable message shown when the
// description service fails for any reason.
const GenerationFailed = "Failed to generate AI description. Please try again."

// AuthoringHandler owns the seller dashboard's add-product form.
type AuthoringHandler struct {
	Authoring *services.AuthoringService
}

// readImage pulls an uploaded image out of the form, returning a data URI
// for preview plus the raw payload for the generation call. A form without
// a file input is not an error: the draft may already hold an image.
func readImage(c *fiber.Ctx) (dataURI string, data []byte, mime string, err error) {
	fh, ferr := c.FormFile("image")
	if ferr != nil {
		return "", nil, "", nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, "", err
	}
	defer f.Close()
	data, err = io.ReadAll(f)
	if err != nil {
		return "", nil, "", err
	}
	mime = fh.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}
	dataURI = "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
	return dataURI, data, mime, nil
}

// updateDraft merges the posted fields (and any upload) into the session's
// form draft.
func (h *AuthoringHandler) updateDraft(c *fiber.Ctx) error {
	uri, data, mime, err := readImage(c)
	if err != nil {
		return err
	}
	sess(c).UpdateDraft(
		c.FormValue("name"),
		c.FormValue("price"),
		c.FormValue("description"),
		c.FormValue("category"),
		uri, data, mime,
	)
	return nil
}

// Submit validates the draft and appends it to the catalog. Validation
// failures render inline and mutate nothing.
func (h *AuthoringHandler) Submit(c *fiber.Ctx) error {
	s := sess(c)
	if err := h.updateDraft(c); err != nil {
		return err
	}
	d := s.Snapshot().Draft

	p, err := h.Authoring.Submit(services.SubmitInput{
		Name:        d.Name,
		Price:       d.Price,
		Description: d.Description,
		Category:    d.Category,
		ImageURL:    d.ImageURL,
	}, s.UserName())
	if errors.Is(err, services.ErrIncomplete) {
		s.SetDraftErr(err.Error())
		return c.Redirect("/")
	}
	if err != nil {
		applog.Error(c, "authoring.submit.error", err, nil)
		return err
	}

	applog.Audit(c, "authoring.product.added", map[string]any{"product": p.ID, "seller": p.Seller})
	s.ResetDraft()
	return c.Redirect("/")
}

// Generate kicks off the one asynchronous operation in the system. The
// result is applied to the draft only if the form still carries the token
// the call started with; a reset in the meantime orphans the result.
func (h *AuthoringHandler) Generate(c *fiber.Ctx) error {
	s := sess(c)
	if err := h.updateDraft(c); err != nil {
		return err
	}

	if d := s.Snapshot().Draft; d.Name == "" || len(d.ImageData) == 0 {
		s.SetDraftErr(services.ErrGenerationInput.Error())
		return c.Redirect("/")
	}

	token, name, img, mime := s.BeginGeneration()
	applog.Info(c, "authoring.generate.start", map[string]any{"name": name})

	go func() {
		desc, err := h.Authoring.Generate(context.Background(), name, img, mime)
		if err != nil {
			applog.Error(nil, "authoring.generate.error", err, map[string]any{"name": name})
			s.ApplyGeneration(token, "", GenerationFailed)
			return
		}
		if !s.ApplyGeneration(token, desc, "") {
			applog.Info(nil, "authoring.generate.stale", map[string]any{"name": name})
		}
	}()

	return c.Redirect("/")
}

// Reset clears the form; any in-flight generation result is discarded when
// it lands.
func (h *AuthoringHandler) Reset(c *fiber.Ctx) error {
	sess(c).ResetDraft()
	return c.Redirect("/")
}
