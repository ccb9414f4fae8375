package grpcSrv

import (
	"context"
	"encoding/json"

	pg "github.com/PARSHURAMA9/BASIC-MATH/server/problem_generator"

	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// Messages travel as JSON; the codec is selected per call through the
// "json" content subtype.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return codecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

const (
	serviceName     = "worksheet.Worksheets"
	generateMethod  = "/" + serviceName + "/Generate"
	exportPDFMethod = "/" + serviceName + "/ExportPDF"
)

// Worksheet is a generated problem set together with its display lines.
type Worksheet struct {
	Set      pg.ProblemSet         `json:"set"`
	Info     string                `json:"info"`
	Problems []pg.FormattedProblem `json:"problems"`
}

// ExportRequest carries previously generated lines back for export.
type ExportRequest struct {
	Operation      pg.Operation          `json:"operation"`
	FontSize       int                   `json:"font_size,omitempty"`
	IncludeAnswers bool                  `json:"include_answers,omitempty"`
	Problems       []pg.FormattedProblem `json:"problems"`
}

type PDFResponse struct {
	Pdf      []byte `json:"pdf"`
	Filename string `json:"filename"`
}

// WorksheetsServer is the server API for the worksheet.Worksheets service.
type WorksheetsServer interface {
	Generate(context.Context, *pg.GenerateRequest) (*Worksheet, error)
	ExportPDF(context.Context, *ExportRequest) (*PDFResponse, error)
}

// WorksheetsClient is the client API for the worksheet.Worksheets service.
type WorksheetsClient interface {
	Generate(ctx context.Context, in *pg.GenerateRequest, opts ...grpc.CallOption) (*Worksheet, error)
	ExportPDF(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*PDFResponse, error)
}

func RegisterWorksheetsServer(s grpc.ServiceRegistrar, srv WorksheetsServer) {
	s.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*WorksheetsServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Generate", Handler: generateHandler},
		{MethodName: "ExportPDF", Handler: exportPDFHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "worksheet.json",
}

func generateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(pg.GenerateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorksheetsServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: generateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorksheetsServer).Generate(ctx, req.(*pg.GenerateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func exportPDFHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ExportRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(WorksheetsServer).ExportPDF(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: exportPDFMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(WorksheetsServer).ExportPDF(ctx, req.(*ExportRequest))
	}
	return interceptor(ctx, in, info, handler)
}

type worksheetsClient struct {
	cc grpc.ClientConnInterface
}

func NewWorksheetsClient(cc grpc.ClientConnInterface) WorksheetsClient {
	return &worksheetsClient{cc}
}

func (c *worksheetsClient) Generate(ctx context.Context, in *pg.GenerateRequest, opts ...grpc.CallOption) (*Worksheet, error) {
	out := new(Worksheet)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, generateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *worksheetsClient) ExportPDF(ctx context.Context, in *ExportRequest, opts ...grpc.CallOption) (*PDFResponse, error) {
	out := new(PDFResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := c.cc.Invoke(ctx, exportPDFMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
