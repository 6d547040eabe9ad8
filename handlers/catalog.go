// File: cinequest/handlers/catalog.go
package handlers

import (
	"net/http"
	"strconv"

	"cinequest/catalog"
	"cinequest/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the movie and cinema catalog the assistant
// grounds its resolutions on.
type CatalogHandler struct {
	Catalog catalog.Provider
}

func NewCatalogHandler(p catalog.Provider) *CatalogHandler {
	return &CatalogHandler{Catalog: p}
}

// GetMoviesHandler handles GET /api/movies?genre=&search=.
func (h *CatalogHandler) GetMoviesHandler(c *gin.Context) {
	genre := c.Query("genre")
	search := c.Query("search")
	movies := catalog.FilterMovies(h.Catalog.Movies(), genre, search)
	c.JSON(http.StatusOK, gin.H{"movies": movies})
}

// GetMovieByIDHandler handles GET /api/movies/:id.
func (h *CatalogHandler) GetMovieByIDHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid movie id", c.Param("id"))
		return
	}
	movie, ok := h.Catalog.MovieByID(id)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "movie not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, movie)
}

// GetCinemasHandler handles GET /api/cinemas/:movieID. Every cinema in
// the catalog screens every movie, so the movie id only gates existence.
func (h *CatalogHandler) GetCinemasHandler(c *gin.Context) {
	movieID, err := strconv.Atoi(c.Param("movieID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid movie id", c.Param("movieID"))
		return
	}
	movie, ok := h.Catalog.MovieByID(movieID)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "movie not found", c.Param("movieID"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"movie": movie, "cinemas": h.Catalog.Cinemas()})
}
