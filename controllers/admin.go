package controllers

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"contactdesk/middleware"
	"contactdesk/pkg/config"
	"contactdesk/store"
)

// LoginForm renders the admin login page.
func LoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "login.html", gin.H{"username": ""})
	}
}

// Login checks the configured credential pair and, on an exact match, issues
// the admin session cookie. No lockout, no rate limiting.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		if !credentialsMatch(username, password) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"error":    "invalid username or password",
				"username": username,
			})
			return
		}

		if err := middleware.IssueSession(c); err != nil {
			c.String(http.StatusInternalServerError, "server error")
			return
		}
		c.Redirect(http.StatusSeeOther, "/messages")
	}
}

// Logout drops the admin flag: revokes the session id and expires the
// cookie.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.ClearSession(c)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

// ListMessages renders the admin listing, newest first, with optional search
// and replied/unreplied filter.
func ListMessages(msgs *store.Messages, analytics *store.Analytics) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")
		filter := listFilter(c.DefaultQuery("filter", "all"))

		list, err := msgs.List(search, filter)
		if err != nil {
			c.String(http.StatusInternalServerError, "server error")
			return
		}
		total, replied, err := analytics.Counts()
		if err != nil {
			c.String(http.StatusInternalServerError, "server error")
			return
		}

		c.HTML(http.StatusOK, "messages.html", gin.H{
			"messages":  list,
			"search":    search,
			"filter":    string(filter),
			"total":     total,
			"unreplied": total - replied,
		})
	}
}

// CreateReply appends an admin reply. The redirect is the same whether or
// not the message existed, so the response leaks nothing about internal ids.
func CreateReply(replies *store.Replies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, perr := strconv.ParseUint(c.Param("id"), 10, 32)
		if perr != nil {
			c.Redirect(http.StatusSeeOther, "/messages")
			return
		}
		err := replies.Create(uint(id), c.PostForm("body"))
		if err != nil && !errors.Is(err, store.ErrNotFound) && !errors.Is(err, store.ErrValidation) {
			c.String(http.StatusInternalServerError, "server error")
			return
		}
		c.Redirect(http.StatusSeeOther, "/messages")
	}
}

func credentialsMatch(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(config.AdminUsername)) == 1

	var passOK bool
	if config.AdminPasswordHash != "" {
		passOK = bcrypt.CompareHashAndPassword([]byte(config.AdminPasswordHash), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(config.AdminPassword)) == 1
	}
	return userOK && passOK
}

func listFilter(raw string) store.ListFilter {
	switch store.ListFilter(raw) {
	case store.FilterReplied:
		return store.FilterReplied
	case store.FilterUnreplied:
		return store.FilterUnreplied
	}
	return store.FilterAll
}
