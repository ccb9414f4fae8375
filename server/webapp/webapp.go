package webapp

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"maps"
	"net/http"
	"time"

	grpcSrv "github.com/PARSHURAMA9/BASIC-MATH/server/grpc"
	"github.com/PARSHURAMA9/BASIC-MATH/server/metrics"
	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

//go:embed template/*.tmpl
var templateFS embed.FS

const requestTimeout = 60 * time.Second

// WebApp wraps a Gin router plus the gRPC client.
type WebApp struct {
	Router     *gin.Engine
	GRPCClient grpcSrv.WorksheetsClient
	Server     *http.Server
}

// NewWebApp wires routes + templates and returns an instance.
func NewWebApp(grpcClient grpcSrv.WorksheetsClient, gatherer prometheus.Gatherer) *WebApp {
	router := gin.Default()
	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"answer": renderAnswer,
	}).ParseFS(templateFS, "template/*.tmpl"))
	router.SetHTMLTemplate(tmpl)

	app := &WebApp{
		Router:     router,
		GRPCClient: grpcClient,
	}
	app.setupRoutes(gatherer)
	return app
}

// Run starts the HTTP server (non-blocking).
func (app *WebApp) Run(addr string) {
	app.Server = &http.Server{
		Addr:              addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("web UI listening on %s", addr)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("webapp: %v", err)
		}
	}()
}

// Shutdown gracefully stops the HTTP server.
func (app *WebApp) Shutdown(ctx context.Context) error {
	if app.Server != nil {
		return app.Server.Shutdown(ctx)
	}
	return nil
}

// ----------------------------------------------------------------------
// Routes
// ----------------------------------------------------------------------

func (app *WebApp) setupRoutes(gatherer prometheus.Gatherer) {
	app.Router.GET("/", app.indexPage)
	for _, op := range []pg.Operation{pg.Addition, pg.Division} {
		app.Router.GET("/"+string(op), app.formPage(op))
		app.Router.POST("/"+string(op), app.generate(op))
	}
	app.Router.POST("/pdf", app.exportPDF)
	app.Router.POST("/csv", app.exportCSV)

	api := app.Router.Group("/api")
	api.POST("/generate", app.apiGenerate)
	api.POST("/pdf", app.apiPDF)

	if gatherer != nil {
		app.Router.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))
	}
}

// pageData feeds the worksheet templates.
type pageData struct {
	Operation pg.Operation
	Form      formValues
	Alert     string
	Info      string
	Mode      pg.DivisionMode
	Problems  []pg.FormattedProblem
	Payload   string
}

func newPage(op pg.Operation, form formValues) *pageData {
	return &pageData{Operation: op, Form: form}
}

func (d *pageData) fill(ws *grpcSrv.Worksheet) error {
	payload, err := encodeProblems(ws.Problems)
	if err != nil {
		return err
	}
	d.Info = ws.Info
	d.Mode = ws.Set.Mode
	d.Problems = ws.Problems
	d.Payload = payload
	return nil
}

func templateName(op pg.Operation) string { return string(op) + ".tmpl" }

// readForm overlays submitted fields on the operation's defaults.
func readForm(c *gin.Context, op pg.Operation) formValues {
	form := formValues(maps.Clone(defaultForms[op]))
	for key := range defaultForms[op] {
		if v, ok := c.GetPostForm(key); ok {
			form[key] = v
		}
	}
	return form
}

// GET /
func (app *WebApp) indexPage(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{})
}

// GET /addition, GET /division
func (app *WebApp) formPage(op pg.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, templateName(op), newPage(op, readForm(c, op)))
	}
}

// POST /addition, POST /division
func (app *WebApp) generate(op pg.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		data := newPage(op, readForm(c, op))
		req, ok, err := data.Form.request(op)
		if err != nil {
			data.Alert = pg.Alert(err, op)
			c.HTML(http.StatusBadRequest, templateName(op), data)
			return
		}

		var ws *grpcSrv.Worksheet
		if ok {
			ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
			defer cancel()
			if ws, err = app.GRPCClient.Generate(ctx, &req); err != nil {
				data.Alert = status.Convert(err).Message()
				c.HTML(httpStatus(err), templateName(op), data)
				return
			}
		} else {
			// an unreadable range produces no problems
			ps := pg.Empty(op, req.Mode, req.Level)
			ws = &grpcSrv.Worksheet{Set: ps, Info: ps.Info(), Problems: pg.Format(ps)}
		}

		if err := data.fill(ws); err != nil {
			c.String(http.StatusInternalServerError, "encode worksheet: %v", err)
			return
		}
		c.HTML(http.StatusOK, templateName(op), data)
	}
}

// POST /pdf
func (app *WebApp) exportPDF(c *gin.Context) {
	op, problems, ok := readExportForm(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()
	resp, err := app.GRPCClient.ExportPDF(ctx, &grpcSrv.ExportRequest{
		Operation:      op,
		FontSize:       formValues{fieldFontSize: c.PostForm(fieldFontSize)}.fontSize(),
		IncludeAnswers: c.PostForm(fieldAnswers) != "",
		Problems:       problems,
	})
	if err != nil {
		data := newPage(op, readForm(c, op))
		data.Alert = status.Convert(err).Message()
		c.HTML(httpStatus(err), templateName(op), data)
		return
	}
	sendPDF(c, resp)
}

// POST /csv
func (app *WebApp) exportCSV(c *gin.Context) {
	op, problems, ok := readExportForm(c)
	if !ok {
		return
	}
	if len(problems) == 0 {
		data := newPage(op, readForm(c, op))
		data.Alert = op.EmptyExportAlert()
		c.HTML(http.StatusPreconditionFailed, templateName(op), data)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s-worksheet.csv"`, op))
	c.Status(http.StatusOK)
	if err := pg.WriteCSV(c.Writer, problems); err != nil {
		log.Printf("csv export: %v", err)
	}
}

func readExportForm(c *gin.Context) (pg.Operation, []pg.FormattedProblem, bool) {
	op, err := pg.ParseOperation(c.PostForm(fieldOperation))
	if err != nil {
		c.String(http.StatusBadRequest, "%v", err)
		return "", nil, false
	}
	problems, err := decodeProblems(c.PostForm(fieldProblems))
	if err != nil {
		c.String(http.StatusBadRequest, "invalid problems: %v", err)
		return "", nil, false
	}
	return op, problems, true
}

// POST /api/generate
func (app *WebApp) apiGenerate(c *gin.Context) {
	var req pg.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid JSON: %v", err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()
	ws, err := app.GRPCClient.Generate(ctx, &req)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": status.Convert(err).Message()})
		return
	}
	c.JSON(http.StatusOK, ws)
}

// POST /api/pdf
func (app *WebApp) apiPDF(c *gin.Context) {
	var req grpcSrv.ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid JSON: %v", err)})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()
	resp, err := app.GRPCClient.ExportPDF(ctx, &req)
	if err != nil {
		c.JSON(httpStatus(err), gin.H{"error": status.Convert(err).Message()})
		return
	}
	sendPDF(c, resp)
}

func sendPDF(c *gin.Context, resp *grpcSrv.PDFResponse) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, resp.Filename))
	c.Data(http.StatusOK, "application/pdf", resp.Pdf)
}

func httpStatus(err error) int {
	switch status.Code(err) {
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.FailedPrecondition:
		return http.StatusPreconditionFailed
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	}
	return http.StatusInternalServerError
}

// renderAnswer shows mixed numbers as MathJax inline math, everything else
// as plain text.
func renderAnswer(mode pg.DivisionMode, a *pg.Answer) string {
	if a == nil {
		return ""
	}
	if mode == pg.Mixed {
		return `\(` + a.LaTeX() + `\)`
	}
	return a.String()
}
