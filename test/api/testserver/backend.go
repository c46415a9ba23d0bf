//go:build api

package testserver

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"

	"ecobin-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// Backend is an in-memory stand-in for the ecobin REST backend.
type Backend struct {
	server *httptest.Server

	mu              sync.Mutex
	users           []backendUser
	bins            []models.Bin
	deposits        []models.Deposit
	credits         map[string]int // idempotency key -> points
	nextUserID      int
	nextBinID       int
	failGivePoints  int
	failListBins    bool
	givePointsCalls int
}

type backendUser struct {
	models.User
	Password string
}

type backendUserPayload struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// NewBackend starts the fake backend.
func NewBackend() *Backend {
	b := &Backend{credits: map[string]int{}, nextUserID: 1, nextBinID: 1}

	r := gin.New()
	api := r.Group("/api")
	{
		api.POST("/login", b.login)
		api.GET("/AppUsers", b.listUsers)
		api.POST("/AppUsers", b.createUser)
		api.DELETE("/deleteUser/:id", b.deleteUser)
		api.GET("/smartbins", b.listBins)
		api.POST("/smartbins", b.createBin)
		api.DELETE("/deleteBin/:id", b.deleteBin)
		api.GET("/deposit", b.listDeposits)
		api.POST("/deposit", b.createDeposit)
		api.POST("/givePoints", b.givePoints)
	}

	b.server = httptest.NewServer(r)
	return b
}

// URL is the backend base URL.
func (b *Backend) URL() string {
	return b.server.URL
}

// Close stops the backend.
func (b *Backend) Close() {
	b.server.Close()
}

// Reset drops all backend data and injected failures.
func (b *Backend) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users, b.bins, b.deposits = nil, nil, nil
	b.credits = map[string]int{}
	b.nextUserID, b.nextBinID = 1, 1
	b.failGivePoints, b.givePointsCalls = 0, 0
	b.failListBins = false
}

// AddUser creates an account directly and returns its id.
func (b *Backend) AddUser(name, email, password, role string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.addUserLocked(backendUserPayload{Name: name, Email: email, Password: password, Role: role})
}

// AddBin creates a bin directly and returns it.
func (b *Backend) AddBin(bin models.Bin) models.Bin {
	b.mu.Lock()
	defer b.mu.Unlock()
	bin.ID = b.nextBinID
	b.nextBinID++
	b.bins = append(b.bins, bin)
	return bin
}

// AddDeposit records a deposit directly.
func (b *Backend) AddDeposit(d models.Deposit) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.deposits = append(b.deposits, d)
}

// FailGivePoints makes the next n credit calls answer 503.
func (b *Backend) FailGivePoints(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failGivePoints = n
}

// FailListBins makes bin listing answer 500 until Reset.
func (b *Backend) FailListBins() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failListBins = true
}

// Points returns the balance of email.
func (b *Backend) Points(email string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if strings.EqualFold(u.Email, email) {
			return u.Points
		}
	}
	return 0
}

// GivePointsCalls counts credit requests, failed ones included.
func (b *Backend) GivePointsCalls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.givePointsCalls
}

// Deposits returns the recorded deposits.
func (b *Backend) Deposits() []models.Deposit {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Deposit(nil), b.deposits...)
}

// Bins returns the bin catalog.
func (b *Backend) Bins() []models.Bin {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Bin(nil), b.bins...)
}

func (b *Backend) addUserLocked(p backendUserPayload) int {
	id := b.nextUserID
	b.nextUserID++
	b.users = append(b.users, backendUser{
		User:     models.User{ID: id, Name: p.Name, Email: p.Email, PhoneNumber: p.PhoneNumber, Role: p.Role},
		Password: p.Password,
	})
	return id
}

func (b *Backend) login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if strings.EqualFold(u.Email, req.Email) && u.Password == req.Password {
			c.JSON(http.StatusOK, gin.H{"Token": "backend-" + strconv.Itoa(u.ID)})
			return
		}
	}
	c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
}

func (b *Backend) listUsers(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	users := make([]models.User, 0, len(b.users))
	for _, u := range b.users {
		users = append(users, u.User)
	}
	c.JSON(http.StatusOK, users)
}

func (b *Backend) createUser(c *gin.Context) {
	var req backendUserPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, u := range b.users {
		if strings.EqualFold(u.Email, req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Email already exists."})
			return
		}
	}
	b.addUserLocked(req)
	c.Status(http.StatusCreated)
}

func (b *Backend) deleteUser(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, u := range b.users {
		if u.ID == id {
			b.users = append(b.users[:i], b.users[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
}

func (b *Backend) listBins(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.failListBins {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, append([]models.Bin{}, b.bins...))
}

func (b *Backend) createBin(c *gin.Context) {
	var bin models.Bin
	if err := c.ShouldBindJSON(&bin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	bin.ID = b.nextBinID
	b.nextBinID++
	b.bins = append(b.bins, bin)
	c.JSON(http.StatusCreated, bin)
}

func (b *Backend) deleteBin(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, bin := range b.bins {
		if bin.ID == id {
			b.bins = append(b.bins[:i], b.bins[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Bin not found"})
}

func (b *Backend) listDeposits(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, append([]models.Deposit{}, b.deposits...))
}

// createDeposit also adds the weight to the bin, as the real backend does.
func (b *Backend) createDeposit(c *gin.Context) {
	var d models.Deposit
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.bins {
		if b.bins[i].ID == d.BinID {
			b.bins[i].CurrentWeight += d.Weight
			d.ID = len(b.deposits) + 1
			b.deposits = append(b.deposits, d)
			c.Status(http.StatusCreated)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Bin not found"})
}

// givePoints credits at most once per Idempotency-Key.
func (b *Backend) givePoints(c *gin.Context) {
	var req models.GivePointsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	key := c.GetHeader("Idempotency-Key")

	b.mu.Lock()
	defer b.mu.Unlock()
	b.givePointsCalls++
	if b.failGivePoints > 0 {
		b.failGivePoints--
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "points service unavailable"})
		return
	}
	if _, done := b.credits[key]; done && key != "" {
		c.Status(http.StatusOK)
		return
	}
	for i := range b.users {
		if strings.EqualFold(b.users[i].Email, req.UserEmail) {
			b.users[i].Points += req.Points
			if key != "" {
				b.credits[key] = req.Points
			}
			c.Status(http.StatusOK)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
}
