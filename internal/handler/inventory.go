package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/middleware"
	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

// InventoryHandler serves stock entries, stock loads and the XLSX export.
type InventoryHandler struct {
	DB *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{DB: db}
}

type createEntryReq struct {
	ProductID  uint             `json:"ID_Prodotto"`
	Quantity   *decimal.Decimal `json:"Quantita"`
	ExpiryDate string           `json:"DataScadenza"`
}

type updateEntryReq struct {
	ProductID  *uint            `json:"ID_Prodotto"`
	Quantity   *decimal.Decimal `json:"Quantita"`
	ExpiryDate *string          `json:"DataScadenza"`
}

// inventoryRow is the joined shape used by the list and the export.
type inventoryRow struct {
	ID            uint
	ProductName   string
	Quantity      decimal.Decimal
	UnitOfMeasure string
	ExpiryDate    *time.Time
	CreatedAt     time.Time
}

func (h *InventoryHandler) CreateEntry(c *gin.Context) {
	var req createEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}
	if req.ProductID == 0 || req.Quantity == nil {
		util.Error(c, http.StatusBadRequest, "Campo mancante: ID_Prodotto e Quantita sono obbligatori")
		return
	}

	// the product reference must resolve
	var count int64
	if err := h.DB.Model(&models.Product{}).Where("id = ?", req.ProductID).Count(&count).Error; err != nil {
		util.ServerError(c)
		return
	}
	if count == 0 {
		util.Error(c, http.StatusNotFound, "Prodotto non trovato")
		return
	}

	entry := models.InventoryEntry{
		ProductID: req.ProductID,
		Quantity:  *req.Quantity,
	}
	if req.ExpiryDate != "" {
		d, err := util.ParseDate(req.ExpiryDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "DataScadenza non valida, usare YYYY-MM-DD")
			return
		}
		entry.ExpiryDate = &d
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Voce inventario aggiunta", entry.ID)
}

func (h *InventoryHandler) listRows() ([]inventoryRow, error) {
	var rows []inventoryRow
	err := h.DB.Model(&models.InventoryEntry{}).
		Select(`inventory_entries.id AS id,
			products.name AS product_name,
			inventory_entries.quantity AS quantity,
			products.unit_of_measure AS unit_of_measure,
			inventory_entries.expiry_date AS expiry_date,
			inventory_entries.created_at AS created_at`).
		Joins("JOIN products ON products.id = inventory_entries.product_id").
		Order("products.name").
		Scan(&rows).Error
	return rows, err
}

func (h *InventoryHandler) List(c *gin.Context) {
	rows, err := h.listRows()
	if err != nil {
		util.ServerError(c)
		return
	}

	out := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		out = append(out, gin.H{
			"ID_VoceInventario": r.ID,
			"NomeProdotto":      r.ProductName,
			"Quantita":          r.Quantity, // exact decimal, marshalled as text
			"UnitaMisura":       r.UnitOfMeasure,
			"DataScadenza":      util.ISODateOrNil(r.ExpiryDate),
			"DataInserimento":   r.CreatedAt.Format(time.RFC3339),
		})
	}
	c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) UpdateEntry(c *gin.Context) {
	entry, ok := h.findEntry(c)
	if !ok {
		return
	}

	var req updateEntryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	if req.ProductID != nil {
		var count int64
		if err := h.DB.Model(&models.Product{}).Where("id = ?", *req.ProductID).Count(&count).Error; err != nil {
			util.ServerError(c)
			return
		}
		if count == 0 {
			util.Error(c, http.StatusNotFound, "Prodotto non trovato")
			return
		}
		entry.ProductID = *req.ProductID
	}
	if req.Quantity != nil {
		entry.Quantity = *req.Quantity
	}
	if req.ExpiryDate != nil {
		d, err := util.ParseDate(*req.ExpiryDate)
		if err != nil {
			util.Error(c, http.StatusBadRequest, "DataScadenza non valida, usare YYYY-MM-DD")
			return
		}
		entry.ExpiryDate = &d
	}

	if err := h.DB.Save(entry).Error; err != nil {
		util.ServerError(c)
		return
	}
	util.Message(c, http.StatusOK, "Voce inventario modificata")
}

func (h *InventoryHandler) DeleteEntry(c *gin.Context) {
	entry, ok := h.findEntry(c)
	if !ok {
		return
	}
	if err := h.DB.Delete(entry).Error; err != nil {
		util.ServerError(c)
		return
	}
	util.Message(c, http.StatusOK, "Voce inventario eliminata")
}

type createLoadReq struct {
	ProductID uint             `json:"ID_Prodotto"`
	Quantity  *decimal.Decimal `json:"QuantitaCaricata"`
	LoadDate  string           `json:"DataCarico"`
	Supplier  string           `json:"Fornitore"`
	Notes     string           `json:"Note"`
}

// CreateLoad registers a stock load and increments the product's inventory
// entry in the same transaction. The entry must already exist: loads never
// provision inventory, and they never touch the stored expiry date.
func (h *InventoryHandler) CreateLoad(c *gin.Context) {
	var req createLoadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}
	if req.ProductID == 0 || req.Quantity == nil || req.LoadDate == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: ID_Prodotto, QuantitaCaricata e DataCarico sono obbligatori")
		return
	}
	loadDate, err := util.ParseDate(req.LoadDate)
	if err != nil {
		util.Error(c, http.StatusBadRequest, "DataCarico non valida, usare YYYY-MM-DD")
		return
	}

	user := middleware.CurrentUser(c)

	var load models.InventoryLoad
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		var entry models.InventoryEntry
		if err := tx.Where("product_id = ?", req.ProductID).First(&entry).Error; err != nil {
			return err
		}

		entry.Quantity = entry.Quantity.Add(*req.Quantity)
		if err := tx.Save(&entry).Error; err != nil {
			return err
		}

		load = models.InventoryLoad{
			ProductID: req.ProductID,
			Quantity:  *req.Quantity,
			LoadDate:  loadDate,
			Supplier:  req.Supplier,
			Notes:     req.Notes,
		}
		if user != nil {
			load.UserID = &user.ID
		}
		return tx.Create(&load).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Prodotto non trovato in inventario. Aggiungere prima la voce inventario.")
			return
		}
		util.ServerError(c)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Carico aggiunto e inventario aggiornato",
		"id_carico": load.ID,
	})
}

// Export streams the joined inventory as an XLSX workbook.
func (h *InventoryHandler) Export(c *gin.Context) {
	rows, err := h.listRows()
	if err != nil {
		util.ServerError(c)
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headers := []string{"Prodotto", "Quantità", "Unità di misura", "Scadenza", "Inserito il"}
	for i, hd := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, hd)
	}

	for i, r := range rows {
		expiry := ""
		if r.ExpiryDate != nil {
			expiry = r.ExpiryDate.Format("2006-01-02")
		}
		values := []interface{}{
			r.ProductName,
			r.Quantity.String(),
			r.UnitOfMeasure,
			expiry,
			r.CreatedAt.Format("2006-01-02"),
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"inventario_%s.xlsx\"",
		time.Now().Format("20060102")))
	if err := f.Write(c.Writer); err != nil {
		util.ServerError(c)
	}
}

func (h *InventoryHandler) findEntry(c *gin.Context) (*models.InventoryEntry, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID non valido")
		return nil, false
	}
	var entry models.InventoryEntry
	if err := h.DB.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Voce inventario non trovata")
		} else {
			util.ServerError(c)
		}
		return nil, false
	}
	return &entry, true
}
