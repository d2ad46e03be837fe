package handler

import (
	"net/http"
	"strconv"

	"github.com/Tristan-Kennedy/Board-Game-App/internal/catalog"
	"github.com/Tristan-Kennedy/Board-Game-App/internal/search"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type GameResponse struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	MinPlayers int      `json:"min_players"`
	MaxPlayers int      `json:"max_players"`
	Categories []string `json:"categories"`
	Mechanics  []string `json:"mechanics"`
}

func newGameResponse(g *catalog.Game) GameResponse {
	return GameResponse{
		ID:         g.ID,
		Name:       g.Name,
		Rating:     g.Rating,
		MinPlayers: g.MinPlayers,
		MaxPlayers: g.MaxPlayers,
		Categories: g.Categories,
		Mechanics:  g.Mechanics,
	}
}

func newGameResponses(games []*catalog.Game) []GameResponse {
	out := make([]GameResponse, len(games))
	for i, g := range games {
		out[i] = newGameResponse(g)
	}
	return out
}

// GameListResponse is a page of games plus the query text after fuzzy
// correction, so the client can round-trip it into the search box.
type GameListResponse struct {
	Data           []GameResponse `json:"data"`
	Meta           PaginationMeta `json:"meta"`
	CorrectedQuery string         `json:"corrected_query"`
}

type ReviewInput struct {
	Score int `json:"score" binding:"required,min=1,max=10" example:"8"`
}

type ReviewResponse struct {
	GameID int     `json:"game_id"`
	Score  int     `json:"score"`
	Rating float64 `json:"rating"`
}

// endregion

// region --- Handlers ---

// GetGames godoc
// @Summary      List and search games
// @Description  Retrieves games from the catalog, optionally filtered by a fuzzy-corrected query on name, category or mechanic, in the default display order.
// @Tags         games
// @Produce      json
// @Param        q      query     string  false  "Search query"
// @Param        field  query     string  false  "Search field: name, category or mechanic"  default(name)
// @Param        page   query     int     false  "Page number" default(1)
// @Param        limit  query     int     false  "Items per page" default(25)
// @Success      200 {object} GameListResponse
// @Failure      400 {object} ErrorResponse "Unknown search field"
// @Router       /games [get]
func (h *Handler) GetGames(c *gin.Context) {
	page, limit := pageParams(c)

	field, err := search.ParseField(c.Query("field"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	corrected, games := h.Lib.Filter(c.Query("q"), field, nil)

	paged := NewPaginatedResponse(newGameResponses(paginateSlice(games, page, limit)), int64(len(games)), page, limit)
	c.JSON(http.StatusOK, GameListResponse{
		Data:           paged.Data,
		Meta:           paged.Meta,
		CorrectedQuery: corrected,
	})
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single catalog game.
// @Tags         games
// @Produce      json
// @Param        id path int true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id} [get]
func (h *Handler) GetGameByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	g, ok := h.Lib.Catalog().Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	c.JSON(http.StatusOK, newGameResponse(g))
}

// SubmitReview godoc
// @Summary      Review a game
// @Description  Stores the user's score for a game, replacing any earlier score, and returns the game's updated rating.
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path int         true "Game ID"
// @Param        input body ReviewInput true "Review"
// @Success      200 {object} ReviewResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /games/{id}/reviews [post]
func (h *Handler) SubmitReview(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	var input ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.Lib.SubmitReview(userID.(uint), id, input.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ReviewResponse{GameID: id, Score: input.Score, Rating: rating})
}

// GetMyReview godoc
// @Summary      Get the user's review of a game
// @Description  Retrieves the authenticated user's stored review for a game, if any.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Game ID"
// @Success      200 {object} ReviewResponse
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse "No review for this game"
// @Router       /games/{id}/reviews/me [get]
func (h *Handler) GetMyReview(c *gin.Context) {
	userID, _ := c.Get("userID")
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game ID"})
		return
	}

	review, err := h.Lib.ReviewFor(userID.(uint), id)
	if err != nil {
		respondError(c, err)
		return
	}

	g, _ := h.Lib.Catalog().Get(id)
	rating := 0.0
	if g != nil {
		rating = g.Rating
	}

	c.JSON(http.StatusOK, ReviewResponse{GameID: id, Score: review.Score, Rating: rating})
}

// endregion
