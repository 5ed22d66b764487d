package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Message writes a {"message": ...} body with the given status.
func Message(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// Created writes a 201 with a message and the id of the new record.
func Created(c *gin.Context, msg string, id uint) {
	c.JSON(http.StatusCreated, gin.H{"message": msg, "id": id})
}

// Error writes an error body. The message is the only detail exposed;
// internal error state never reaches the client.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"message": msg})
}

// ServerError is the catch-all 500.
func ServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Errore del server")
}
