package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DadoBotGaming/voluntary-association/internal/middleware"
	"github.com/DadoBotGaming/voluntary-association/internal/models"
	"github.com/DadoBotGaming/voluntary-association/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewsHandler serves news creation (admin) and the public paginated listing.
type NewsHandler struct {
	DB              *gorm.DB
	DefaultPageSize int
}

func NewNewsHandler(db *gorm.DB, defaultPageSize int) *NewsHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = 5
	}
	return &NewsHandler{DB: db, DefaultPageSize: defaultPageSize}
}

type createNewsReq struct {
	Title    string `json:"Titolo"`
	Content  string `json:"Contenuto"`
	Author   string `json:"Autore"`
	ImageURL string `json:"ImmagineURL"`
	Category string `json:"Categoria"`
}

func newsJSON(n *models.NewsPost) gin.H {
	return gin.H{
		"ID_Notizia":        n.ID,
		"Titolo":            n.Title,
		"Contenuto":         n.Content,
		"DataPubblicazione": n.PublishedAt.Format(time.RFC3339),
		"Autore":            n.Author,
		"ImmagineURL":       n.ImageURL,
		"Categoria":         n.Category,
	}
}

func (h *NewsHandler) Create(c *gin.Context) {
	var req createNewsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Corpo della richiesta non valido")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.Content == "" {
		util.Error(c, http.StatusBadRequest, "Campo mancante: Titolo e Contenuto sono obbligatori")
		return
	}

	author := req.Author
	if author == "" {
		if user := middleware.CurrentUser(c); user != nil {
			author = strconv.FormatUint(uint64(user.ID), 10)
		}
	}

	post := models.NewsPost{
		Title:    req.Title,
		Content:  req.Content,
		Author:   author,
		ImageURL: req.ImageURL,
		Category: req.Category,
	}
	if err := h.DB.Create(&post).Error; err != nil {
		util.ServerError(c)
		return
	}

	util.Created(c, "Notizia aggiunta con successo", post.ID)
}

// List returns one page of news, most recent first, plus page totals.
func (h *NewsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(h.DefaultPageSize)))
	if perPage <= 0 {
		perPage = h.DefaultPageSize
	}

	var total int64
	if err := h.DB.Model(&models.NewsPost{}).Count(&total).Error; err != nil {
		util.ServerError(c)
		return
	}

	var posts []models.NewsPost
	if err := h.DB.Order("published_at DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&posts).Error; err != nil {
		util.ServerError(c)
		return
	}

	items := make([]gin.H, 0, len(posts))
	for i := range posts {
		items = append(items, newsJSON(&posts[i]))
	}

	totalPages := int(total) / perPage
	if int(total)%perPage != 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{
		"notizie":      items,
		"total_pages":  totalPages,
		"current_page": page,
		"total_items":  total,
	})
}

func (h *NewsHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "ID non valido")
		return
	}

	var post models.NewsPost
	if err := h.DB.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, "Notizia non trovata")
		} else {
			util.ServerError(c)
		}
		return
	}
	c.JSON(http.StatusOK, newsJSON(&post))
}
