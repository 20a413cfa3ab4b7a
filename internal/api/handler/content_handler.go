package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/traincore/coaching-api/internal/core/ports"
)

// ContentHandler serves the public marketing content and its admin-gated
// mutation endpoints.
type ContentHandler struct {
	service ports.ContentService
}

func NewContentHandler(service ports.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

type homeContentRequest struct {
	Headline     string `json:"headline"       validate:"required"`
	Subheadline  string `json:"subheadline"`
	AboutText    string `json:"about_text"`
	HeroImageURL string `json:"hero_image_url" validate:"omitempty,url"`
}

type contactInfoRequest struct {
	Email        string `json:"email"         validate:"required,email"`
	Phone        string `json:"phone"         validate:"required"`
	Address      string `json:"address"`
	InstagramURL string `json:"instagram_url" validate:"omitempty,url"`
	WhatsApp     string `json:"whatsapp"`
}

type testimonialRequest struct {
	AuthorName string `json:"author_name" validate:"required"`
	Quote      string `json:"quote"       validate:"required"`
	Rating     int    `json:"rating"      validate:"required,gte=1,lte=5"`
	Published  bool   `json:"published"`
}

type updateTestimonialRequest struct {
	AuthorName *string `json:"author_name"`
	Quote      *string `json:"quote"`
	Rating     *int    `json:"rating" validate:"omitempty,gte=1,lte=5"`
	Published  *bool   `json:"published"`
}

type videoRequest struct {
	Title       string `json:"title"       validate:"required"`
	URL         string `json:"url"         validate:"required,url"`
	Description string `json:"description"`
	Position    int    `json:"position"    validate:"gte=0"`
}

type updateVideoRequest struct {
	Title       *string `json:"title"`
	URL         *string `json:"url" validate:"omitempty,url"`
	Description *string `json:"description"`
	Position    *int    `json:"position" validate:"omitempty,gte=0"`
}

// GetHome handles GET /home (public).
//
// @Summary      Get the home page content
// @Tags         content
// @Produce      json
// @Success      200  {object}  domain.HomeContent
// @Router       /home [get]
func (h *ContentHandler) GetHome(c echo.Context) error {
	content, err := h.service.GetHome(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}

// UpsertHome handles PUT /home (admin only). The payload replaces the single
// home row.
//
// @Summary      Replace the home page content
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      homeContentRequest  true  "Home content"
// @Success      200   {object}  domain.HomeContent
// @Router       /home [put]
func (h *ContentHandler) UpsertHome(c echo.Context) error {
	var req homeContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	content, err := h.service.UpsertHome(c.Request().Context(), ports.HomeContentInput{
		Headline:     req.Headline,
		Subheadline:  req.Subheadline,
		AboutText:    req.AboutText,
		HeroImageURL: req.HeroImageURL,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, content)
}

// GetContact handles GET /contact (public).
func (h *ContentHandler) GetContact(c echo.Context) error {
	info, err := h.service.GetContact(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// UpsertContact handles PUT /contact (admin only).
func (h *ContentHandler) UpsertContact(c echo.Context) error {
	var req contactInfoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	info, err := h.service.UpsertContact(c.Request().Context(), ports.ContactInfoInput{
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		InstagramURL: req.InstagramURL,
		WhatsApp:     req.WhatsApp,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}

// ListTestimonials handles GET /testimonials (public): published entries only.
//
// @Summary      List published testimonials
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.Testimonial
// @Router       /testimonials [get]
func (h *ContentHandler) ListTestimonials(c echo.Context) error {
	items, err := h.service.ListTestimonials(c.Request().Context(), false)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// ListAllTestimonials handles GET /testimonials/all (admin only): includes
// unpublished drafts.
func (h *ContentHandler) ListAllTestimonials(c echo.Context) error {
	items, err := h.service.ListTestimonials(c.Request().Context(), true)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateTestimonial handles POST /testimonials (admin only).
func (h *ContentHandler) CreateTestimonial(c echo.Context) error {
	var req testimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.CreateTestimonial(c.Request().Context(), ports.TestimonialInput{
		AuthorName: req.AuthorName,
		Quote:      req.Quote,
		Rating:     req.Rating,
		Published:  req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, t)
}

// UpdateTestimonial handles PATCH /testimonials/:id (admin only).
func (h *ContentHandler) UpdateTestimonial(c echo.Context) error {
	var req updateTestimonialRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	t, err := h.service.UpdateTestimonial(c.Request().Context(), c.Param("id"), ports.UpdateTestimonialInput{
		AuthorName: req.AuthorName,
		Quote:      req.Quote,
		Rating:     req.Rating,
		Published:  req.Published,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, t)
}

// DeleteTestimonial handles DELETE /testimonials/:id (admin only).
func (h *ContentHandler) DeleteTestimonial(c echo.Context) error {
	if err := h.service.DeleteTestimonial(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListVideos handles GET /videos (public).
func (h *ContentHandler) ListVideos(c echo.Context) error {
	items, err := h.service.ListVideos(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// CreateVideo handles POST /videos (admin only).
func (h *ContentHandler) CreateVideo(c echo.Context) error {
	var req videoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.service.CreateVideo(c.Request().Context(), ports.VideoInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Position:    req.Position,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, v)
}

// UpdateVideo handles PATCH /videos/:id (admin only).
func (h *ContentHandler) UpdateVideo(c echo.Context) error {
	var req updateVideoRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	v, err := h.service.UpdateVideo(c.Request().Context(), c.Param("id"), ports.UpdateVideoInput{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
		Position:    req.Position,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// DeleteVideo handles DELETE /videos/:id (admin only).
func (h *ContentHandler) DeleteVideo(c echo.Context) error {
	if err := h.service.DeleteVideo(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
