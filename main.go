package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/PARSHURAMA9/BASIC-MATH/server/config"
	grpcSrv "github.com/PARSHURAMA9/BASIC-MATH/server/grpc"
	"github.com/PARSHURAMA9/BASIC-MATH/server/metrics"
	pdfgenerator "github.com/PARSHURAMA9/BASIC-MATH/server/pdf_generator"
	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"
	"github.com/PARSHURAMA9/BASIC-MATH/server/webapp"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// rangeFlag parses "min:max".
type rangeFlag struct {
	r pg.Range
}

func (f *rangeFlag) String() string { return fmt.Sprintf("%d:%d", f.r.Min, f.r.Max) }

func (f *rangeFlag) Set(s string) error {
	a, b, ok := strings.Cut(s, ":")
	if !ok {
		return fmt.Errorf("want min:max, got %q", s)
	}
	lo, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return err
	}
	hi, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return err
	}
	f.r = pg.Range{Min: lo, Max: hi}
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		outDir   = flag.String("out_dir", cfg.OutDir, "directory to write PDF results")
		grpcPort = flag.String("grpc-port", cfg.GRPCAddr, "gRPC server port")
		webPort  = flag.String("web_port", cfg.WebAddr, "port for Gin web UI")
		seed     = flag.Uint64("seed", cfg.Seed, "shuffle seed, 0 for a random one")

		op       = flag.String("op", "", "one-shot export: addition | division")
		mode     = flag.String("mode", string(pg.ZeroRemainder), "division mode: zero | decimal | mixed")
		level    = flag.String("level", "1", "randomization: 1 sequential, 2 block, 3 full")
		fontSize = flag.Int("font", 0, "PDF font size, 0 for the sheet default")
		answers  = flag.Bool("answers", false, "append an answer key (division)")
	)
	first := &rangeFlag{pg.Range{Min: 1, Max: 10}}
	second := &rangeFlag{pg.Range{Min: 1, Max: 10}}
	num := &rangeFlag{pg.Range{Min: 1, Max: 20}}
	den := &rangeFlag{pg.Range{Min: 1, Max: 10}}
	ans := &rangeFlag{pg.Range{Min: 1, Max: 10}}
	flag.Var(first, "first", "addition first number range min:max")
	flag.Var(second, "second", "addition second number range min:max")
	flag.Var(num, "num", "division dividend range min:max (decimal, mixed)")
	flag.Var(den, "den", "division divisor range min:max")
	flag.Var(ans, "ans", "division answer range min:max (zero)")
	flag.Parse()

	//------------------------------------------------------------
	// Graceful-shutdown context
	//------------------------------------------------------------
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gen := pg.NewSeededGenerator(*seed)
	pdf := pdfgenerator.NewPDFGenerator(pdfgenerator.Config{
		PageSize:   cfg.PageSize,
		FontFamily: cfg.FontFamily,
		Author:     cfg.Author,
	})

	if *op != "" {
		req, err := buildRequest(*op, *mode, *level, first.r, second.r, num.r, den.r, ans.r)
		if err != nil {
			log.Fatalf("%v", err)
		}
		opts := pdfgenerator.Options{FontSize: *fontSize, IncludeAnswers: *answers}
		if err := exportOnce(ctx, gen, pdf, req, opts, *outDir); err != nil {
			log.Fatalf("export: %v", err)
		}
		return
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(grpcSrv.UnaryInterceptor(m)))
	grpcSrv.RegisterWorksheetsServer(grpcServer, grpcSrv.NewServer(gen, pdf, m))

	// Initialize gRPC Server
	lis, err := net.Listen("tcp", *grpcPort)
	if err != nil {
		log.Fatalf("Failed to listen on %s: %v", *grpcPort, err)
	}
	// Establish gRPC client connection
	conn, err := grpc.NewClient(dialTarget(*grpcPort), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect GRPC on %s: %v", *grpcPort, err)
	}
	defer conn.Close()
	go func() {
		log.Printf("gRPC server listening on %s", *grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("Failed to serve gRPC server: %v", err)
		}
	}()

	webApp := webapp.NewWebApp(grpcSrv.NewWorksheetsClient(conn), reg)
	webApp.Run(*webPort)

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := webApp.Shutdown(shutdownCtx); err != nil {
		log.Printf("Web app shutdown error: %v", err)
	}
	grpcServer.GracefulStop() // GracefulStop is blocking until all RPCs finish
	log.Println("Servers shut down.")
}

// dialTarget turns a listen address such as ":50051" into a dialable one.
func dialTarget(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "localhost" + addr
	}
	return addr
}

func buildRequest(opName, modeName, levelName string, first, second, num, den, ans pg.Range) (pg.GenerateRequest, error) {
	op, err := pg.ParseOperation(opName)
	if err != nil {
		return pg.GenerateRequest{}, err
	}
	level, err := pg.ParseLevel(levelName)
	if err != nil {
		return pg.GenerateRequest{}, err
	}
	req := pg.GenerateRequest{Operation: op, Level: level, First: first, Second: second}
	if op == pg.Division {
		if req.Mode, err = pg.ParseMode(modeName); err != nil {
			return pg.GenerateRequest{}, err
		}
		req.Numerator, req.Denominator, req.Answer = num, den, ans
	}
	return req, nil
}

func exportOnce(ctx context.Context, gen *pg.Generator, pdf *pdfgenerator.PDFGenerator, req pg.GenerateRequest, opts pdfgenerator.Options, outDir string) error {
	ps, err := gen.Generate(req)
	if err != nil {
		return fmt.Errorf("%s", pg.Alert(err, req.Operation))
	}
	log.Print(ps.Info())

	sheet, err := pdfgenerator.SheetFor(req.Operation)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", outDir, err)
	}
	path := filepath.Join(outDir, sheet.FileName)
	if err := pdf.GeneratePDF(ctx, sheet, pg.Format(ps), opts, path); err != nil {
		return fmt.Errorf("%s: %s", path, pg.Alert(err, req.Operation))
	}
	log.Printf("wrote %s", path)
	return nil
}
