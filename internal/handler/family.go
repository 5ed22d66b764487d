package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FamilyHandler serves CRUD over the families served by the association.
type FamilyHandler struct {
	DB *gorm.DB
}

func NewFamilyHandler(db *gorm.DB) *FamilyHandler {
	return &FamilyHandler{DB: db}
}

type createFamilyReq struct {
	Name              string `json:"NomeFamiglia"`
	ReferentFirstName string `json:"ReferenteNome"`
	ReferentLastName  string `json:"ReferenteCognome"`
	Members           int    `json:"NumeroMembri"`
	Men               int    `json:"NumeroUomini"`
	Women             int    `json:"NumeroDonne"`
	Children          int    `json:"NumeroBambini"`
	Address           string `json:"Indirizzo"`
	Phone             string `json:"NumeroTelefono"`
	Email             string `json:"Email"`
	DistributionWeek  int    `json:"SettimanaDistribuzione"`
	DistributionType  string `json:"TipoDistribuzione"`
	Notes             string `json:"Note"`
}

// updateFamilyReq uses pointer fields: an absent field (or explicit null)
// keeps the stored value.
type updateFamilyReq struct {
	Name              *string `json:"NomeFamiglia"`
	ReferentFirstName *string `json:"ReferenteNome"`
	ReferentLastName  *string `json:"ReferenteCognome"`
	Members           *int    `json:"NumeroMembri"`
	Men               *int    `json:"NumeroUomini"`
	Women             *int    `json:"NumeroDonne"`
	Children          *int    `json:"NumeroBambini"`
	Address           *string `json:"Indirizzo"`
	Phone             *string `json:"NumeroTelefono"`
	Email             *string `json:"Email"`
	DistributionWeek  *int    `json:"SettimanaDistribuzione"`
	DistributionType  *string `json:"TipoDistribuzione"`
	Notes             *string `json:"Note"`
}

func familyJSON(f *models.Family) gin.H {
	return gin.H{
		"ID_Famiglia":            f.ID,
		"NomeFamiglia":           f.Name,
		"ReferenteNome":          f.ReferentFirstName,
		"ReferenteCognome":       f.ReferentLastName,
		"NumeroMembri":           f.Members,
		"NumeroUomini":           f.Men,
		"NumeroDonne":            f.Women,
		"NumeroBambini":          f.Children,
		"Indirizzo":              f.Address,
		"NumeroTelefono":         f.Phone,
		"Email":                  f.Email,
		"SettimanaDistribuzione": f.DistributionWeek,
		"TipoDistribuzione":      f.DistributionType,
		"Note":                   f.Notes,
		"DataRegistrazione":      f.CreatedAt.Format(time.RFC3339),
	}
}

func (h *FamilyHandler) Create(c *gin.Context) {
	var req createFamilyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: NomeFamiglia")
		return
	}
	if !models.ValidDistribType(req.DistributionType) {
		util.Error(c, http.StatusBadRequest, "TipoDistribuzione non valido")
		return
	}

	family := models.Family{
		Name:              req.Name,
		ReferentFirstName: req.ReferentFirstName,
		ReferentLastName:  req.ReferentLastName,
		Members:           req.Members,
		Men:               req.Men,
		Women:             req.Women,
		Children:          req.Children,
		Address:           req.Address,
		Phone:             req.Phone,
		Email:             req.Email,
		DistributionWeek:  req.DistributionWeek,
		DistributionType:  req.DistributionType,
		Notes:             req.Notes,
	}
	if err := h.DB.Create(&family).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Famiglia aggiunta con successo", family.ID)
}

func (h *FamilyHandler) List(c *gin.Context) {
	var families []models.Family
	if err := h.DB.Find(&families).Error; err != nil {
		util.ServerError(c)
		return
	}

	out := make([]gin.H, 0, len(families))
	for i := range families {
		out = append(out, familyJSON(&families[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *FamilyHandler) Get(c *gin.Context) {
	family, ok := h.find(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, familyJSON(family))
}

func (h *FamilyHandler) Update(c *gin.Context) {
	family, ok := h.find(c)
	if !ok {
		return
	}

	var req updateFamilyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			util.Error(c, http.StatusBadRequest, "NomeFamiglia non può essere vuoto")
			return
		}
		family.Name = *req.Name
	}
	if req.ReferentFirstName != nil {
		family.ReferentFirstName = *req.ReferentFirstName
	}
	if req.ReferentLastName != nil {
		family.ReferentLastName = *req.ReferentLastName
	}
	if req.Members != nil {
		family.Members = *req.Members
	}
	if req.Men != nil {
		family.Men = *req.Men
	}
	if req.Women != nil {
		family.Women = *req.Women
	}
	if req.Children != nil {
		family.Children = *req.Children
	}
	if req.Address != nil {
		family.Address = *req.Address
	}
	if req.Phone != nil {
		family.Phone = *req.Phone
	}
	if req.Email != nil {
		family.Email = *req.Email
	}
	if req.DistributionWeek != nil {
		family.DistributionWeek = *req.DistributionWeek
	}
	if req.DistributionType != nil {
		if !models.ValidDistribType(*req.DistributionType) {
			util.Error(c, http.StatusBadRequest, "TipoDistribuzione non valido")
			return
		}
		family.DistributionType = *req.DistributionType
	}
	if req.Notes != nil {
		family.Notes = *req.Notes
	}

	if err := h.DB.Save(family).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Message(c, http.StatusOK, "Famiglia modificata con successo")
}

// Delete removes the family unconditionally. Dependent distributions are
// removed by the schema's cascade; appointment references are nulled out.
func (h *FamilyHandler) Delete(c *gin.Context) {
	family, ok := h.find(c)
	if !ok {
		return
	}
	if err := h.DB.Delete(family).Error; err != nil {
		util.ServerError(c)
		return
	}
	util.Message(c, http.StatusOK, "Famiglia eliminata con successo")
}

func (h *FamilyHandler) find(c *gin.Context) (*models.Family, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID non valido")
		return nil, false
	}
	var family models.Family
	if err := h.DB.First(&family, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Famiglia non trovata")
		} else {
			util.ServerError(c)
		}
		return nil, false
	}
	return &family, true
}
