package service

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/katalvlaran/wspplanner/assignment"
	"github.com/katalvlaran/wspplanner/backjump"
	"github.com/katalvlaran/wspplanner/instance"
	"github.com/katalvlaran/wspplanner/predicate"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// stepFrame is one JSON message per search attempt the back-jumping
// generator makes: depth in the exploration order, the step and user it
// tried, and whether the incremental predicate evaluation held.
type stepFrame struct {
	Depth int  `json:"depth"`
	Step  int  `json:"step"`
	User  int  `json:"user"`
	OK    bool `json:"ok"`
}

// doneFrame closes the stream, reporting how many complete assignments
// over the non-pattern steps were found before the generator exhausted.
type doneFrame struct {
	Done      bool `json:"done"`
	Solutions int  `json:"solutions"`
}

// handleStream upgrades to a websocket and streams backjump.Generator's
// search over the instance passed in the "instance" query parameter (the
// §6 grammar, URL-encoded). It runs only the back-jumping phase over the
// non-pattern steps — observational only, it never computes or returns a
// full plan.
func handleStream(c *gin.Context) {
	text := c.Query("instance")
	if text == "" {
		c.String(http.StatusBadRequest, "missing instance query parameter")

		return
	}

	inst, err := instance.Load(strings.NewReader(text))
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)

		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("service: websocket upgrade failed: %v", err)

		return
	}
	defer conn.Close()

	ordAll := inst.Order()
	nSet := make(map[int]struct{})
	for _, s := range inst.Preds.NonPatternSteps() {
		nSet[s] = struct{}{}
	}

	ordN := make([]int, 0, len(nSet))
	for _, s := range ordAll {
		if _, ok := nSet[s]; ok {
			ordN = append(ordN, s)
		}
	}
	authN := make(map[int][]int, len(ordN))
	for _, s := range ordN {
		authN[s] = inst.Auth[s]
	}

	solutions := 0
	a := assignment.New(inst.K)
	nonUI := inst.Preds.ByClass(predicate.NonUI)
	gen := backjump.New(a, nonUI, ordN, authN, backjump.WithOnStep(func(depth, step, user int, ok bool) {
		if err := conn.WriteJSON(stepFrame{Depth: depth, Step: step, User: user, OK: ok}); err != nil {
			log.Printf("service: websocket write failed: %v", err)
		}
	}))

	for gen.Next() {
		solutions++
	}

	_ = conn.WriteJSON(doneFrame{Done: true, Solutions: solutions})
}
