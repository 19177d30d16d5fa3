package handler

import (
	"net/http"
	"time"

	"github.com/matheuseschaves/supermarket-tracker/internal/infra"

	"github.com/gin-gonic/gin"
)

// BackupHandler copies the live database file on demand.
type BackupHandler struct {
	dbPath string
	dir    string
	now    func() time.Time
}

func NewBackupHandler(dbPath, dir string) *BackupHandler {
	return &BackupHandler{dbPath: dbPath, dir: dir, now: time.Now}
}

// Criar POST /v1/backup
func (h *BackupHandler) Criar(c *gin.Context) {
	path, err := infra.Backup(h.dbPath, h.dir, h.now())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"arquivo": path})
}

// Listar GET /v1/backup
func (h *BackupHandler) Listar(c *gin.Context) {
	files, err := infra.ListBackups(h.dir)
	if err != nil {
		writeError(c, err)
		return
	}
	if files == nil {
		files = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"data": files})
}
