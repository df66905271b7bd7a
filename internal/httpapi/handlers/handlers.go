package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftbar/mixology/pkg/config"
	"github.com/craftbar/mixology/pkg/service/account"
	"github.com/craftbar/mixology/pkg/service/catalog"
	"github.com/craftbar/mixology/pkg/service/search"
	"github.com/craftbar/mixology/pkg/types"
)

type Handlers struct {
	config  *config.AppConfig
	catalog *catalog.Service
	search  *search.Service
	account *account.Service
}

func NewHandlers(cfg *config.AppConfig, cat *catalog.Service, srch *search.Service, acc *account.Service) *Handlers {
	return &Handlers{
		config:  cfg,
		catalog: cat,
		search:  srch,
		account: acc,
	}
}

// UserResponse is the user record without the password hash.
type UserResponse struct {
	ID       int            `json:"id"`
	Username string         `json:"username"`
	Email    string         `json:"email"`
	Ratings  map[string]int `json:"ratings"`
}

func toUserResponse(u *types.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Ratings:  u.Ratings,
	}
}

// ListCocktails returns the catalog, optionally filtered or sorted by one
// query parameter: difficulty, alcoholBase, maxTime, or sort
// (difficulty|preptime|rating).
func (h *Handlers) ListCocktails(c *gin.Context) {
	ctx := c.Request.Context()

	switch {
	case c.Query("difficulty") != "":
		c.JSON(http.StatusOK, h.catalog.FilterByDifficulty(ctx, c.Query("difficulty")))
	case c.Query("alcoholBase") != "":
		c.JSON(http.StatusOK, h.catalog.FilterByAlcoholBase(ctx, c.Query("alcoholBase")))
	case c.Query("maxTime") != "":
		maxTime, err := strconv.Atoi(c.Query("maxTime"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "maxTime must be an integer"})
			return
		}
		c.JSON(http.StatusOK, h.catalog.FilterByMaxPreparationTime(ctx, maxTime))
	case c.Query("sort") == "difficulty":
		c.JSON(http.StatusOK, h.catalog.SortByDifficulty(ctx))
	case c.Query("sort") == "preptime":
		c.JSON(http.StatusOK, h.catalog.SortByPreparationTime(ctx))
	case c.Query("sort") == "rating":
		c.JSON(http.StatusOK, h.catalog.SortByRating(ctx))
	default:
		c.JSON(http.StatusOK, h.catalog.GetAll(ctx))
	}
}

func (h *Handlers) GetCocktail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	cocktail, ok := h.catalog.GetByID(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cocktail not found"})
		return
	}
	c.JSON(http.StatusOK, cocktail)
}

func (h *Handlers) CreateCocktail(c *gin.Context) {
	var in types.Cocktail
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cocktail payload"})
		return
	}

	ctx := c.Request.Context()
	in.ID = h.catalog.NextID(ctx)
	if !h.catalog.AddNew(ctx, in) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cocktail name is required"})
		return
	}
	c.JSON(http.StatusCreated, in)
}

func (h *Handlers) UpdateCocktail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var in types.Cocktail
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cocktail payload"})
		return
	}

	ctx := c.Request.Context()
	if _, ok := h.catalog.GetByID(ctx, id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cocktail not found"})
		return
	}

	in.ID = id
	h.catalog.Update(ctx, in)
	c.JSON(http.StatusOK, in)
}

func (h *Handlers) DeleteCocktail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	h.catalog.Delete(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// SearchCocktails runs the advanced search: name substring, alcohol base
// and difficulty exact match, each skipped when empty. An ingredient query
// runs the ingredient search instead.
func (h *Handlers) SearchCocktails(c *gin.Context) {
	ctx := c.Request.Context()

	if ingredient := c.Query("ingredient"); ingredient != "" {
		c.JSON(http.StatusOK, h.search.ByIngredient(ctx, ingredient))
		return
	}

	results := h.search.Advanced(ctx, c.Query("name"), c.Query("alcoholBase"), c.Query("difficulty"))
	c.JSON(http.StatusOK, results)
}

func (h *Handlers) GetAlcoholBases(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.AvailableAlcoholBases(c.Request.Context()))
}

func (h *Handlers) GetDifficulties(c *gin.Context) {
	c.JSON(http.StatusOK, h.search.AvailableDifficulties(c.Request.Context()))
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handlers) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid registration payload"})
		return
	}

	if !h.account.Register(c.Request.Context(), req.Username, req.Email, req.Password) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registration failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"registered": true})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login collapses unknown usernames and wrong passwords into the same
// response so accounts cannot be enumerated.
func (h *Handlers) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid login payload"})
		return
	}

	user, ok := h.account.Login(c.Request.Context(), req.Username, req.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

type RateRequest struct {
	UserID int `json:"userId"`
	Rating int `json:"rating"`
}

func (h *Handlers) RateCocktail(c *gin.Context) {
	cocktailID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}

	var req RateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rating payload"})
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}

	ctx := c.Request.Context()
	h.account.RateCocktail(ctx, req.UserID, cocktailID, req.Rating)

	cocktail, ok := h.catalog.GetByID(ctx, cocktailID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "cocktail not found"})
		return
	}
	logrus.WithField("cocktailId", cocktailID).WithField("userId", req.UserID).Debug("rating recorded")
	c.JSON(http.StatusOK, gin.H{"averageRating": cocktail.AverageRating})
}

func (h *Handlers) GetUserRating(c *gin.Context) {
	cocktailID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be an integer"})
		return
	}

	rating, ok := h.account.GetUserRating(c.Request.Context(), userID, cocktailID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no rating found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

func (h *Handlers) RemoveRating(c *gin.Context) {
	cocktailID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be an integer"})
		return
	}
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId must be an integer"})
		return
	}

	h.account.RemoveRating(c.Request.Context(), userID, cocktailID)
	c.Status(http.StatusNoContent)
}
