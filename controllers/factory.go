package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/inatfood/pos-backend/utils"
)

// Generic CRUD handlers for the plain catalog entities. Every handler
// works on whole documents: load fully, mutate in memory, persist as one
// unit, so a failed request never leaves a half-written record.

var errNoDocument = errors.New("no document found with that ID")

func CreateOne[T any](db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := new(T)
		if err := c.ShouldBindJSON(doc); err != nil {
			utils.RespondFail(c, http.StatusBadRequest, err)
			return
		}
		if err := db.Create(doc).Error; err != nil {
			utils.RespondFail(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondData(c, http.StatusCreated, doc)
	}
}

func GetAll[T any](db *gorm.DB, preloads ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var docs []T
		q := db
		for _, p := range preloads {
			q = q.Preload(p)
		}
		if err := q.Find(&docs).Error; err != nil {
			utils.RespondFail(c, http.StatusInternalServerError, err)
			return
		}
		utils.RespondList(c, http.StatusOK, len(docs), docs)
	}
}

func GetOne[T any](db *gorm.DB, preloads ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := new(T)
		q := db
		for _, p := range preloads {
			q = q.Preload(p)
		}
		if err := q.First(doc, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondFail(c, http.StatusNotFound, errNoDocument)
			} else {
				utils.RespondFail(c, http.StatusInternalServerError, err)
			}
			return
		}
		utils.RespondData(c, http.StatusOK, doc)
	}
}

// UpdateOne overlays the request body onto the stored document and saves
// the result, so omitted fields keep their persisted values.
func UpdateOne[T any](db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := new(T)
		if err := db.First(doc, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondFail(c, http.StatusNotFound, errNoDocument)
			} else {
				utils.RespondFail(c, http.StatusInternalServerError, err)
			}
			return
		}
		if err := c.ShouldBindJSON(doc); err != nil {
			utils.RespondFail(c, http.StatusBadRequest, err)
			return
		}
		if err := db.Save(doc).Error; err != nil {
			utils.RespondFail(c, http.StatusBadRequest, err)
			return
		}
		utils.RespondData(c, http.StatusOK, doc)
	}
}

func DeleteOne[T any](db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc := new(T)
		if err := db.First(doc, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				utils.RespondFail(c, http.StatusNotFound, errNoDocument)
			} else {
				utils.RespondFail(c, http.StatusInternalServerError, err)
			}
			return
		}
		if err := db.Delete(doc).Error; err != nil {
			utils.RespondFail(c, http.StatusBadRequest, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
