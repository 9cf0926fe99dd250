package handlers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/database"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/models"
	"github.com/Maclean-Holdbrook/Hood-eatery-backend/internal/services"
)

const maxImageSize = 5 * 1024 * 1024

// MenuHandler manages the menu catalog.
type MenuHandler struct {
	db     *gorm.DB
	images *services.CloudinaryService
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(db *gorm.DB, images *services.CloudinaryService) *MenuHandler {
	return &MenuHandler{db: db, images: images}
}

// ListCategories returns all categories in display order. The read is
// wrapped in the retry helper so a sleeping database gets a second chance.
func (h *MenuHandler) ListCategories(c *fiber.Ctx) error {
	categories, err := database.Retry(func() ([]models.MenuCategory, error) {
		var out []models.MenuCategory
		err := h.db.Order("display_order asc").Find(&out).Error
		return out, err
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": categories})
}

// GetCategory returns a single category by ID.
func (h *MenuHandler) GetCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.MenuCategory
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

type categoryRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"display_order"`
}

// CreateCategory persists a new category.
func (h *MenuHandler) CreateCategory(c *fiber.Ctx) error {
	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	category := models.MenuCategory{
		Name:         req.Name,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if err := h.db.Create(&category).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": category})
}

// UpdateCategory updates an existing category.
func (h *MenuHandler) UpdateCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var category models.MenuCategory
	if err := h.db.First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "category not found")
		}
		return err
	}

	var req categoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	category.Name = req.Name
	category.Description = req.Description
	category.DisplayOrder = req.DisplayOrder
	if err := h.db.Save(&category).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": category})
}

// DeleteCategory removes a category by ID.
func (h *MenuHandler) DeleteCategory(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	if err := h.db.Delete(&models.MenuCategory{}, "id = ?", id).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "category deleted successfully"})
}

// ListItems returns menu items, optionally filtered by category.
func (h *MenuHandler) ListItems(c *fiber.Ctx) error {
	category := c.Query("category")

	items, err := database.Retry(func() ([]models.MenuItem, error) {
		query := h.db.Preload("Category")
		if category != "" {
			if id, err := uuid.Parse(category); err == nil {
				query = query.Where("category_id = ?", id)
			}
		}
		var out []models.MenuItem
		err := query.Find(&out).Error
		return out, err
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": items})
}

// GetItem returns a single menu item.
func (h *MenuHandler) GetItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.db.Preload("Category").First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "menu item not found")
		}
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// CreateItem persists a new menu item with an optional image upload.
func (h *MenuHandler) CreateItem(c *fiber.Ctx) error {
	item := models.MenuItem{
		Name:        strings.TrimSpace(c.FormValue("name")),
		Description: c.FormValue("description"),
		IsAvailable: true,
	}

	if item.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid price")
	}
	item.Price = price

	if v := c.FormValue("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
		}
		item.CategoryID = &id
	}
	if v := c.FormValue("is_available"); v != "" {
		item.IsAvailable = v == "true"
	}
	if v := c.FormValue("is_featured"); v != "" {
		item.IsFeatured = v == "true"
	}

	imageURL, err := h.uploadImage(c)
	if err != nil {
		return err
	}
	item.ImageURL = imageURL

	if err := h.db.Create(&item).Error; err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": item})
}

// UpdateItem updates a menu item. A new image replaces the old one; the
// previous image is removed from Cloudinary best-effort.
func (h *MenuHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "menu item not found")
		}
		return err
	}

	if v := c.FormValue("name"); v != "" {
		item.Name = v
	}
	if v := c.FormValue("description"); v != "" {
		item.Description = v
	}
	if v := c.FormValue("price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil || price < 0 {
			return fiber.NewError(fiber.StatusBadRequest, "invalid price")
		}
		item.Price = price
	}
	if v := c.FormValue("category_id"); v != "" {
		categoryID, err := uuid.Parse(v)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid category_id")
		}
		item.CategoryID = &categoryID
	}
	if v := c.FormValue("is_available"); v != "" {
		item.IsAvailable = v == "true"
	}
	if v := c.FormValue("is_featured"); v != "" {
		item.IsFeatured = v == "true"
	}

	imageURL, err := h.uploadImage(c)
	if err != nil {
		return err
	}
	if imageURL != "" {
		if item.ImageURL != "" {
			if err := h.images.DeleteImage(c.Context(), item.ImageURL); err != nil {
				log.Printf("failed to delete old image from Cloudinary: %v", err)
			}
		}
		item.ImageURL = imageURL
	}

	if err := h.db.Save(&item).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "data": item})
}

// DeleteItem removes a menu item and its image.
func (h *MenuHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid id")
	}

	var item models.MenuItem
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "menu item not found")
		}
		return err
	}

	if item.ImageURL != "" {
		if err := h.images.DeleteImage(c.Context(), item.ImageURL); err != nil {
			log.Printf("failed to delete image from Cloudinary: %v", err)
		}
	}

	if err := h.db.Delete(&item).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "message": "menu item deleted successfully"})
}

// uploadImage reads the optional "image" form file and pushes it to
// Cloudinary. Returns an empty URL when no file was attached.
func (h *MenuHandler) uploadImage(c *fiber.Ctx) (string, error) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	if fileHeader.Size > maxImageSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "image must be 5MB or smaller")
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", fiber.NewError(fiber.StatusBadRequest, "only image files are allowed")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "failed to read uploaded file")
	}
	defer file.Close()

	url, err := h.images.UploadImage(c.Context(), file)
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "image upload failed")
	}
	return url, nil
}
