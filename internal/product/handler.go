package product

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wichananm65/sports-store/internal/paging"
)

// Reloader re-reads the catalog from its source.
type Reloader interface {
	Reload(ctx context.Context) (int, error)
}

type Handler struct {
	service  *Service
	reloader Reloader
}

// NewHandler builds the listing handler. reloader may be nil when the
// catalog source cannot be reloaded.
func NewHandler(service *Service, reloader Reloader) *Handler {
	return &Handler{service: service, reloader: reloader}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.getProducts)
	app.Get("/api/v1/products/pagination", h.getPagination)
	app.Get("/api/v1/products/page/:page", h.getProductsPage)
	app.Get("/api/v1/products/:category/page/:page", h.getProductsPage)

	// dev-only endpoint to reload the catalog, enabled when ALLOW_RESET_PRODUCTS=1
	if h.reloader != nil {
		app.Post("/dev/reload-catalog", h.reloadCatalog)
	}
}

type pagingResponse struct {
	paging.Info
	TotalPages int `json:"totalPages"`
}

type listResponse struct {
	Products        []Product      `json:"products"`
	PagingInfo      pagingResponse `json:"pagingInfo"`
	CurrentCategory *string        `json:"currentCategory"`
	PageLinks       []paging.Link  `json:"pageLinks"`
}

func (h *Handler) getProducts(c *fiber.Ctx) error {
	category := queryCategory(c)
	page, err := parsePage(c.Query("page"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.writeList(c, category, page, queryPageURL(category))
}

// getProductsPage serves the path-style routes /products/page/2 and
// /products/Soccer/page/2.
func (h *Handler) getProductsPage(c *fiber.Ctx) error {
	var category *string
	if raw := c.Params("category"); raw != "" {
		name, err := url.PathUnescape(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "invalid category"})
		}
		category = &name
	}
	page, err := parsePage(c.Params("page"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return h.writeList(c, category, page, pathPageURL(category))
}

func (h *Handler) writeList(c *fiber.Ctx, category *string, page int, pageURL func(int) string) error {
	result, err := h.service.List(c.UserContext(), category, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(listResponse{
		Products: result.Products,
		PagingInfo: pagingResponse{
			Info:       result.PagingInfo,
			TotalPages: result.PagingInfo.TotalPages(),
		},
		CurrentCategory: result.CurrentCategory,
		PageLinks:       paging.Links(result.PagingInfo, pageURL),
	})
}

// getPagination returns the pagination controls as an HTML fragment.
func (h *Handler) getPagination(c *fiber.Ctx) error {
	category := queryCategory(c)
	page, err := parsePage(c.Query("page"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	result, err := h.service.List(c.UserContext(), category, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(paging.RenderLinks(paging.Links(result.PagingInfo, queryPageURL(category))))
}

// reloadCatalog is protected by the ALLOW_RESET_PRODUCTS environment variable; set it to "1" to allow.
func (h *Handler) reloadCatalog(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_PRODUCTS") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reload not allowed")
	}
	n, err := h.reloader.Reload(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{"loaded": n})
}

// queryCategory treats a missing or empty category as "no filter".
func queryCategory(c *fiber.Ctx) *string {
	if v := c.Query("category"); v != "" {
		return &v
	}
	return nil
}

// ErrInvalidPage reports a page value that is not a positive integer.
var ErrInvalidPage = errors.New("page must be a positive integer")

// parsePage reads a page query or path value; empty means the first page.
func parsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidPage, raw)
	}
	return page, nil
}

func queryPageURL(category *string) func(int) string {
	return func(page int) string {
		q := url.Values{}
		if category != nil {
			q.Set("category", *category)
		}
		q.Set("page", strconv.Itoa(page))
		return "/api/v1/products?" + q.Encode()
	}
}

func pathPageURL(category *string) func(int) string {
	return func(page int) string {
		if category == nil {
			return "/api/v1/products/page/" + strconv.Itoa(page)
		}
		return "/api/v1/products/" + url.PathEscape(*category) + "/page/" + strconv.Itoa(page)
	}
}
