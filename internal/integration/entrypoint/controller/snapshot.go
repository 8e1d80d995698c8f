package controller

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/application/usecase/snapshot"
	"github.com/pocketledger/backend/internal/integration/entrypoint/dto"
)

// maxSnapshotSize caps an uploaded snapshot document at 50 MiB.
const maxSnapshotSize = 50 << 20

// SnapshotController handles full-data export and restore endpoints.
type SnapshotController struct {
	exportUseCase *snapshot.ExportSnapshotUseCase
	importUseCase *snapshot.ImportSnapshotUseCase
}

// NewSnapshotController creates a new snapshot controller instance.
func NewSnapshotController(
	exportUseCase *snapshot.ExportSnapshotUseCase,
	importUseCase *snapshot.ImportSnapshotUseCase,
) *SnapshotController {
	return &SnapshotController{
		exportUseCase: exportUseCase,
		importUseCase: importUseCase,
	}
}

// Export handles GET /snapshot/export requests, returning the snapshot
// document as a download.
func (c *SnapshotController) Export(ctx *gin.Context) {
	output, err := c.exportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	filename := "pocketledger-" + time.Now().UTC().Format("2006-01-02") + ".json"
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.JSON(http.StatusOK, output.Snapshot)
}

// Import handles POST /snapshot/import requests. The body is the snapshot
// document itself; collections present in it replace the stored ones.
func (c *SnapshotController) Import(ctx *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(ctx.Request.Body, maxSnapshotSize))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Could not read request body"})
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), snapshot.ImportSnapshotInput{Raw: raw})
	if err != nil {
		respondDomainError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"imported": output.Imported,
		"reconciliation": gin.H{
			"cards_checked":   output.Reconciliation.CardsChecked,
			"cards_corrected": output.Reconciliation.CardsCorrected,
		},
	})
}
