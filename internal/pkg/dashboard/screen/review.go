package screen

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/mutation"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/respond"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/review"
	"github.com/Chizihn/glubon-admin/internal/pkg/dashboard/viewer"
)

// Review exposes approve/reject modals for the rows of one screen.
type Review struct {
	Screen string
	Board  *review.Board
	Env    Env
	// Load fetches the record shown when the modal opens.
	Load func(ctx context.Context, id string) (review.Record, error)
	// Decide dispatches the decision; refresh reloads the admin's open list.
	Decide func(ctx context.Context, d review.Decision, refresh mutation.Refresher) mutation.Outcome
}

// ReviewResponse is the modal state returned by every review endpoint.
type ReviewResponse struct {
	Review   review.Snapshot `json:"review"`
	Download string          `json:"download,omitempty"`
}

// Register mounts the modal under base, which must contain an :id parameter.
//
//	POST   base          open
//	GET    base          current state
//	POST   base/viewer   {op}
//	POST   base/back
//	POST   base/approve
//	POST   base/reject   {reason}
//	DELETE base          close
func (rv *Review) Register(g *gin.RouterGroup, base string) {
	if rv.Board == nil {
		rv.Board = review.NewBoard()
	}
	g.POST(base, rv.open)
	g.GET(base, rv.with(func(c *gin.Context, w *review.Workflow) error {
		c.JSON(http.StatusOK, ReviewResponse{Review: w.Snapshot()})
		return nil
	}))
	g.POST(base+"/viewer", rv.with(rv.view))
	g.POST(base+"/back", rv.with(func(c *gin.Context, w *review.Workflow) error {
		if err := w.Back(); err != nil {
			return err
		}
		c.JSON(http.StatusOK, ReviewResponse{Review: w.Snapshot()})
		return nil
	}))
	g.POST(base+"/approve", rv.with(func(c *gin.Context, w *review.Workflow) error {
		if err := w.BeginApprove(); err != nil {
			return err
		}
		return rv.submit(c, w, "")
	}))
	g.POST(base+"/reject", rv.with(func(c *gin.Context, w *review.Workflow) error {
		var req struct {
			Reason string `json:"reason"`
		}
		if !respond.BindJSON(c, &req) {
			return nil
		}
		if err := w.BeginReject(); err != nil {
			return err
		}
		return rv.submit(c, w, req.Reason)
	}))
	g.DELETE(base, rv.with(func(c *gin.Context, w *review.Workflow) error {
		if err := w.Close(); err != nil {
			return err
		}
		rv.Board.Forget(rv.sessionOf(c), c.Param("id"))
		c.Status(http.StatusNoContent)
		return nil
	}))
}

func (rv *Review) open(c *gin.Context) {
	ctx := c.Request.Context()
	rec, err := rv.Load(ctx, c.Param("id"))
	if err != nil {
		respond.Failure(c, err)
		return
	}
	admin := respond.Admin(c)
	w, err := rv.Board.Open(rv.sessionOf(c), rec, func(ctx context.Context, d review.Decision) mutation.Outcome {
		// resolved at submit time
		return rv.Decide(ctx, d, Refresher(rv.Env.Refreshers, admin, rv.Screen))
	})
	if err != nil {
		respond.Failure(c, err)
		return
	}
	c.JSON(http.StatusOK, ReviewResponse{Review: w.Snapshot()})
}

func (rv *Review) view(c *gin.Context, w *review.Workflow) error {
	var req struct {
		Op viewer.Op `json:"op" binding:"required"`
	}
	if !respond.BindJSON(c, &req) {
		return nil
	}
	snap, url, err := w.View(req.Op)
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, ReviewResponse{Review: snap, Download: url})
	return nil
}

func (rv *Review) submit(c *gin.Context, w *review.Workflow, reason string) error {
	out, err := w.Submit(c.Request.Context(), reason)
	if err != nil {
		return err
	}
	rv.Board.Forget(rv.sessionOf(c), c.Param("id"))
	respond.Outcome(c, out)
	return nil
}

func (rv *Review) with(fn func(c *gin.Context, w *review.Workflow) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		w, err := rv.Board.Get(rv.sessionOf(c), c.Param("id"))
		if err == nil {
			err = fn(c, w)
		}
		if err != nil {
			respond.Failure(c, err)
		}
	}
}

// sessionOf keys workflows by screen and admin.
func (rv *Review) sessionOf(c *gin.Context) string {
	return rv.Screen + ":" + respond.Admin(c)
}
