package handler

import (
	"net/http"
	"strings"

	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ProductHandler serves product creation and listing. Products are
// immutable once created.
type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

type createProductReq struct {
	Name          string `json:"NomeProdotto"`
	Description   string `json:"Descrizione"`
	UnitOfMeasure string `json:"UnitaMisura"`
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: NomeProdotto")
		return
	}

	product := models.Product{
		Name:          req.Name,
		Description:   req.Description,
		UnitOfMeasure: req.UnitOfMeasure,
	}
	if err := h.DB.Create(&product).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Prodotto aggiunto con successo", product.ID)
}

func (h *ProductHandler) List(c *gin.Context) {
	var products []models.Product
	if err := h.DB.Find(&products).Error; err != nil {
		util.ServerError(c)
		return
	}

	out := make([]gin.H, 0, len(products))
	for _, p := range products {
		out = append(out, gin.H{
			"ID_Prodotto":  p.ID,
			"NomeProdotto": p.Name,
			"Descrizione":  p.Description,
			"UnitaMisura":  p.UnitOfMeasure,
		})
	}
	c.JSON(http.StatusOK, out)
}
