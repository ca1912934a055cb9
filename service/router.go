package service

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/wspplanner/instance"
	"github.com/katalvlaran/wspplanner/planner"
)

// solveResponse is the JSON body returned by POST /solve.
type solveResponse struct {
	RequestID  string `json:"request_id"`
	Solved     bool   `json:"solved"`
	Assignment []int  `json:"assignment,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewRouter builds the gin.Engine exposing the planner over HTTP.
func NewRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/solve", handleSolve)
	r.GET("/solve/stream", handleStream)

	return r
}

// handleSolve loads the §6 instance grammar from the request body, runs
// PlanAll, and returns the outcome as JSON.
func handleSolve(c *gin.Context) {
	requestID := uuid.NewString()

	inst, err := instance.Load(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, solveResponse{RequestID: requestID, Error: err.Error()})

		return
	}

	sol, ok := planner.PlanAll(inst)
	if !ok {
		c.JSON(http.StatusOK, solveResponse{RequestID: requestID, Solved: false})

		return
	}

	assignment := make([]int, sol.Len())
	for s := 0; s < sol.Len(); s++ {
		assignment[s] = sol.Get(s) + 1
	}

	c.JSON(http.StatusOK, solveResponse{RequestID: requestID, Solved: true, Assignment: assignment})
}
