package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/models"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/search"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type CollectionInput struct {
	Name string `json:"name" binding:"required" example:"Favorites"`
}

type CollectionResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func newCollectionResponse(collection models.Collection) CollectionResponse {
	return CollectionResponse{
		ID:        collection.ID,
		Name:      collection.Name,
		CreatedAt: collection.CreatedAt,
	}
}

// endregion

// region --- Handlers ---

// GetCollections godoc
// @Summary      List the user's collections
// @Description  Retrieves the authenticated user's collections in creation order.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   CollectionResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /collections [get]
func (h *Handler) GetCollections(c *gin.Context) {
	userID, _ := c.Get("userID")

	collections, err := h.Lib.Collections(userID.(uint))
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]CollectionResponse, 0, len(collections))
	for _, collection := range collections {
		response = append(response, newCollectionResponse(collection))
	}
	c.JSON(http.StatusOK, response)
}

// CreateCollection godoc
// @Summary      Create a collection
// @Description  Creates a new, empty named collection for the user.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body CollectionInput true "Collection Info"
// @Success      201  {object}  CollectionResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Collection name already exists"
// @Router       /collections [post]
func (h *Handler) CreateCollection(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input CollectionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection, err := h.Lib.CreateCollection(userID.(uint), input.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCollectionResponse(*collection))
}

// DeleteCollection godoc
// @Summary      Delete a collection
// @Description  Deletes one of the user's collections and its memberships.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        name path string true "Collection name"
// @Success      200 {object} map[string]string "{"message": "Collection deleted"}"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Collection not found"
// @Router       /collections/{name} [delete]
func (h *Handler) DeleteCollection(c *gin.Context) {
	userID, _ := c.Get("userID")

	if err := h.Lib.DeleteCollection(userID.(uint), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

// GetCollectionGames godoc
// @Summary      List a collection's games
// @Description  Resolves the collection's game ids through the catalog, optionally filtered by a fuzzy-corrected query, in the default display order. Ids no longer in the catalog are dropped.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        name   path      string  true   "Collection name"
// @Param        q      query     string  false  "Search query"
// @Param        field  query     string  false  "Search field: name, category or mechanic"  default(name)
// @Success      200 {object} GameListResponse
// @Failure      400 {object} ErrorResponse "Unknown search field"
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Collection not found"
// @Router       /collections/{name}/games [get]
func (h *Handler) GetCollectionGames(c *gin.Context) {
	userID, _ := c.Get("userID")

	field, err := search.ParseField(c.Query("field"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, limit := pageParams(c)

	games, err := h.Lib.Resolve(userID.(uint), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	corrected, games := h.Lib.Filter(c.Query("q"), field, games)

	paged := NewPaginatedResponse(newGameResponses(paginateSlice(games, page, limit)), int64(len(games)), page, limit)
	c.JSON(http.StatusOK, GameListResponse{
		Data:           paged.Data,
		Meta:           paged.Meta,
		CorrectedQuery: corrected,
	})
}

// AddCollectionGame godoc
// @Summary      Add a game to a collection
// @Description  Appends a catalog game to the end of a collection.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        name   path string true "Collection name"
// @Param        gameID path int    true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game added"}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Collection or game not found"
// @Failure      409 {object} ErrorResponse "Game already in collection"
// @Router       /collections/{name}/games/{gameID} [post]
func (h *Handler) AddCollectionGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, err := strconv.Atoi(c.Param("gameID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.Lib.AddGame(userID.(uint), c.Param("name"), gameID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game added"})
}

// RemoveCollectionGame godoc
// @Summary      Remove a game from a collection
// @Description  Removes a game from one of the user's collections.
// @Tags         collections
// @Produce      json
// @Security     BearerAuth
// @Param        name   path string true "Collection name"
// @Param        gameID path int    true "Game ID"
// @Success      200 {object} map[string]string "{"message": "Game removed"}"
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Collection or game not found"
// @Router       /collections/{name}/games/{gameID} [delete]
func (h *Handler) RemoveCollectionGame(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID, err := strconv.Atoi(c.Param("gameID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	if err := h.Lib.RemoveGame(userID.(uint), c.Param("name"), gameID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Game removed"})
}

// endregion
