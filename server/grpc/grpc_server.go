// server/grpc/grpc_server.go
package grpcSrv

import (
	"bytes"
	"context"
	"errors"
	"log"
	"time"

	"github.com/PARSHURAMA9/BASIC-MATH/server/metrics"
	pdfgenerator "github.com/PARSHURAMA9/BASIC-MATH/server/pdf_generator"
	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server implements the worksheet.Worksheets gRPC service.
type Server struct {
	gen     *pg.Generator
	pdf     *pdfgenerator.PDFGenerator
	metrics *metrics.Metrics
}

func NewServer(gen *pg.Generator, pdf *pdfgenerator.PDFGenerator, m *metrics.Metrics) *Server {
	return &Server{gen: gen, pdf: pdf, metrics: m}
}

// Generate builds a fresh problem set and its display lines.
func (s *Server) Generate(ctx context.Context, req *pg.GenerateRequest) (*Worksheet, error) {
	ps, err := s.gen.Generate(*req)
	if err != nil {
		s.metrics.Rejected(rejectReason(err))
		return nil, status.Error(codes.InvalidArgument, pg.Alert(err, req.Operation))
	}
	s.metrics.Generated(ps)

	return &Worksheet{Set: ps, Info: ps.Info(), Problems: pg.Format(ps)}, nil
}

// ExportPDF renders previously generated lines to a PDF document.
func (s *Server) ExportPDF(ctx context.Context, req *ExportRequest) (*PDFResponse, error) {
	sheet, err := pdfgenerator.SheetFor(req.Operation)
	if err != nil {
		s.metrics.Rejected(rejectReason(err))
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if len(req.Problems) == 0 {
		s.metrics.Rejected(rejectReason(pg.ErrEmptyExport))
		return nil, status.Error(codes.FailedPrecondition, req.Operation.EmptyExportAlert())
	}

	var buf bytes.Buffer
	opts := pdfgenerator.Options{FontSize: req.FontSize, IncludeAnswers: req.IncludeAnswers}
	if err := s.pdf.Render(&buf, sheet, req.Problems, opts); err != nil {
		return nil, status.Errorf(codes.Internal, "pdf gen: %v", err)
	}
	s.metrics.Exported(req.Operation)

	return &PDFResponse{Pdf: buf.Bytes(), Filename: sheet.FileName}, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, pg.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, pg.ErrRangeOverflow):
		return "range_overflow"
	case errors.Is(err, pg.ErrEmptyExport):
		return "empty_export"
	case errors.Is(err, pg.ErrUnknownLevel):
		return "unknown_level"
	case errors.Is(err, pg.ErrUnknownMode):
		return "unknown_mode"
	case errors.Is(err, pg.ErrUnknownOperation):
		return "unknown_operation"
	}
	return "other"
}

// UnaryInterceptor logs every RPC and counts it by method and status code.
func UnaryInterceptor(m *metrics.Metrics) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		code := status.Code(err)

		m.ObserveRPC(info.FullMethod, code.String())
		log.Printf("rpc %s %s in %s", info.FullMethod, code, time.Since(start))
		return resp, err
	}
}
