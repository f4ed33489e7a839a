package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/technova/inventory-service/internal/domain/models"
	"github.com/technova/inventory-service/internal/metrics"
	"github.com/technova/inventory-service/internal/store"
)

// ItemsHandler adapts the inventory store to the HTTP surface. Validation
// always runs before any mutation; a rejected payload never touches the store.
type ItemsHandler struct {
	store   *store.InventoryStore
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewItemsHandler constructs the HTTP handler adapter.
func NewItemsHandler(st *store.InventoryStore, m *metrics.Metrics, logger *zap.Logger) *ItemsHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ItemsHandler{store: st, metrics: m, logger: logger}
}

// Index reports that the service is up.
func (h *ItemsHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Inventory Service is running!",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Health is the liveness probe endpoint.
func (h *ItemsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ListItems returns every item with a count.
func (h *ItemsHandler) ListItems(c *gin.Context) {
	items := h.store.List()
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// GetItem returns a single item by id.
func (h *ItemsHandler) GetItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.store.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// AddItem validates the payload and stores a new item.
func (h *ItemsHandler) AddItem(c *gin.Context) {
	cand, reason := h.bindCandidate(c)
	if cand == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	item := h.store.Add(*cand.Name, cand.StockValue())
	h.countMutation("add")
	h.logger.Info("item added", zap.Int("id", item.ID), zap.String("name", item.Name))

	c.JSON(http.StatusCreated, gin.H{"message": "Item added!", "item": item})
}

// UpdateItem validates the payload and replaces name and stock of an item.
func (h *ItemsHandler) UpdateItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	cand, reason := h.bindCandidate(c)
	if cand == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": reason})
		return
	}

	item, err := h.store.Update(id, *cand.Name, cand.StockValue())
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	h.countMutation("update")
	h.logger.Info("item updated", zap.Int("id", item.ID))

	c.JSON(http.StatusOK, gin.H{"message": "Item updated!", "item": item})
}

// DeleteItem removes an item permanently.
func (h *ItemsHandler) DeleteItem(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.store.Delete(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	h.countMutation("delete")
	h.logger.Info("item deleted", zap.Int("id", item.ID))

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted!", "deleted_item": item})
}

// bindCandidate decodes the request body into a candidate and validates it.
// An undecodable, empty or null body is treated as "no data provided", the
// same way the validator treats a nil candidate. Returns nil plus the
// rejection reason on failure; the reason is empty on success.
func (h *ItemsHandler) bindCandidate(c *gin.Context) (*models.ItemCandidate, string) {
	var cand *models.ItemCandidate
	if err := c.ShouldBindJSON(&cand); err != nil {
		h.logger.Debug("undecodable request body", zap.Error(err))
		cand = nil
	}

	if ok, reason := models.ValidateItem(cand); !ok {
		return nil, reason
	}
	return cand, ""
}

func (h *ItemsHandler) countMutation(op string) {
	if h.metrics != nil {
		h.metrics.MutationsTotal.WithLabelValues(op).Inc()
	}
}

// itemID parses the id path segment. Anything that is not a positive integer
// gets the same 404 an unknown id would, before the store is consulted.
func itemID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return 0, false
	}
	return id, true
}
