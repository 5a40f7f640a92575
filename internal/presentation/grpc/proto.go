package grpc

// proto.go defines the gRPC server interface derived from
// koperasi/ledger/v1/ledger.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from github.com/kspdigital/koperasi-core/api/gen/go/koperasi/ledger/v1.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LedgerServiceServer is the server API for LedgerService.
// It mirrors the proto-generated interface from koperasi.ledger.v1.LedgerService.
type LedgerServiceServer interface {
	ComputeAmortization(context.Context, *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error)
	RegisterLoan(context.Context, *RegisterLoanRequest) (*RegisterLoanResponse, error)
	ApproveLoan(context.Context, *ApproveLoanRequest) (*ApproveLoanResponse, error)
	RejectLoan(context.Context, *RejectLoanRequest) (*RejectLoanResponse, error)
	GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error)
	GetLoanSchedule(context.Context, *GetLoanScheduleRequest) (*GetLoanScheduleResponse, error)
	RecordPayment(context.Context, *RecordPaymentRequest) (*RecordPaymentResponse, error)
	ReversePayment(context.Context, *ReversePaymentRequest) (*ReversePaymentResponse, error)
	RecordDue(context.Context, *RecordDueRequest) (*RecordDueResponse, error)
	DuesTotals(context.Context, *DuesTotalsRequest) (*DuesTotalsResponse, error)
	RecordExpense(context.Context, *RecordExpenseRequest) (*RecordExpenseResponse, error)
	ApproveExpense(context.Context, *ApproveExpenseRequest) (*ApproveExpenseResponse, error)
	RecordDonation(context.Context, *RecordDonationRequest) (*RecordDonationResponse, error)
	ReconcilePeriod(context.Context, *ReconcilePeriodRequest) (*ReconcilePeriodResponse, error)
	ClosePeriod(context.Context, *ClosePeriodRequest) (*ClosePeriodResponse, error)
	mustEmbedUnimplementedLedgerServiceServer()
}

// UnimplementedLedgerServiceServer provides forward-compatible default implementations.
type UnimplementedLedgerServiceServer struct{}

func (UnimplementedLedgerServiceServer) ComputeAmortization(context.Context, *ComputeAmortizationRequest) (*ComputeAmortizationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ComputeAmortization not implemented")
}
func (UnimplementedLedgerServiceServer) RegisterLoan(context.Context, *RegisterLoanRequest) (*RegisterLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RegisterLoan not implemented")
}
func (UnimplementedLedgerServiceServer) ApproveLoan(context.Context, *ApproveLoanRequest) (*ApproveLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveLoan not implemented")
}
func (UnimplementedLedgerServiceServer) RejectLoan(context.Context, *RejectLoanRequest) (*RejectLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RejectLoan not implemented")
}
func (UnimplementedLedgerServiceServer) GetLoan(context.Context, *GetLoanRequest) (*GetLoanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoan not implemented")
}
func (UnimplementedLedgerServiceServer) GetLoanSchedule(context.Context, *GetLoanScheduleRequest) (*GetLoanScheduleResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetLoanSchedule not implemented")
}
func (UnimplementedLedgerServiceServer) RecordPayment(context.Context, *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordPayment not implemented")
}
func (UnimplementedLedgerServiceServer) ReversePayment(context.Context, *ReversePaymentRequest) (*ReversePaymentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReversePayment not implemented")
}
func (UnimplementedLedgerServiceServer) RecordDue(context.Context, *RecordDueRequest) (*RecordDueResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordDue not implemented")
}
func (UnimplementedLedgerServiceServer) DuesTotals(context.Context, *DuesTotalsRequest) (*DuesTotalsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method DuesTotals not implemented")
}
func (UnimplementedLedgerServiceServer) RecordExpense(context.Context, *RecordExpenseRequest) (*RecordExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordExpense not implemented")
}
func (UnimplementedLedgerServiceServer) ApproveExpense(context.Context, *ApproveExpenseRequest) (*ApproveExpenseResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ApproveExpense not implemented")
}
func (UnimplementedLedgerServiceServer) RecordDonation(context.Context, *RecordDonationRequest) (*RecordDonationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RecordDonation not implemented")
}
func (UnimplementedLedgerServiceServer) ReconcilePeriod(context.Context, *ReconcilePeriodRequest) (*ReconcilePeriodResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ReconcilePeriod not implemented")
}
func (UnimplementedLedgerServiceServer) ClosePeriod(context.Context, *ClosePeriodRequest) (*ClosePeriodResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ClosePeriod not implemented")
}
func (UnimplementedLedgerServiceServer) mustEmbedUnimplementedLedgerServiceServer() {}

// RegisterLedgerServiceServer registers the LedgerServiceServer with the gRPC server.
func RegisterLedgerServiceServer(s *grpclib.Server, srv LedgerServiceServer) {
	s.RegisterService(&_LedgerService_serviceDesc, srv)
}

var _LedgerService_serviceDesc = grpclib.ServiceDesc{ //nolint:revive
	ServiceName: "koperasi.ledger.v1.LedgerService",
	HandlerType: (*LedgerServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "ComputeAmortization", Handler: _LedgerService_ComputeAmortization_Handler},
		{MethodName: "RegisterLoan", Handler: _LedgerService_RegisterLoan_Handler},
		{MethodName: "ApproveLoan", Handler: _LedgerService_ApproveLoan_Handler},
		{MethodName: "RejectLoan", Handler: _LedgerService_RejectLoan_Handler},
		{MethodName: "GetLoan", Handler: _LedgerService_GetLoan_Handler},
		{MethodName: "GetLoanSchedule", Handler: _LedgerService_GetLoanSchedule_Handler},
		{MethodName: "RecordPayment", Handler: _LedgerService_RecordPayment_Handler},
		{MethodName: "ReversePayment", Handler: _LedgerService_ReversePayment_Handler},
		{MethodName: "RecordDue", Handler: _LedgerService_RecordDue_Handler},
		{MethodName: "DuesTotals", Handler: _LedgerService_DuesTotals_Handler},
		{MethodName: "RecordExpense", Handler: _LedgerService_RecordExpense_Handler},
		{MethodName: "ApproveExpense", Handler: _LedgerService_ApproveExpense_Handler},
		{MethodName: "RecordDonation", Handler: _LedgerService_RecordDonation_Handler},
		{MethodName: "ReconcilePeriod", Handler: _LedgerService_ReconcilePeriod_Handler},
		{MethodName: "ClosePeriod", Handler: _LedgerService_ClosePeriod_Handler},
	},
	Streams: []grpclib.StreamDesc{},
}

func _LedgerService_ComputeAmortization_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ComputeAmortizationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ComputeAmortization(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/ComputeAmortization",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ComputeAmortization(ctx, req.(*ComputeAmortizationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RegisterLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RegisterLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RegisterLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/RegisterLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RegisterLoan(ctx, req.(*RegisterLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ApproveLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ApproveLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ApproveLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/ApproveLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ApproveLoan(ctx, req.(*ApproveLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RejectLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RejectLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RejectLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/RejectLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RejectLoan(ctx, req.(*RejectLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_GetLoan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(GetLoanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).GetLoan(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/GetLoan",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).GetLoan(ctx, req.(*GetLoanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_GetLoanSchedule_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(GetLoanScheduleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).GetLoanSchedule(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/GetLoanSchedule",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).GetLoanSchedule(ctx, req.(*GetLoanScheduleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RecordPayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RecordPaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RecordPayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/RecordPayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RecordPayment(ctx, req.(*RecordPaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ReversePayment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ReversePaymentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ReversePayment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/ReversePayment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ReversePayment(ctx, req.(*ReversePaymentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RecordDue_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RecordDueRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RecordDue(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/RecordDue",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RecordDue(ctx, req.(*RecordDueRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_DuesTotals_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(DuesTotalsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).DuesTotals(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/DuesTotals",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).DuesTotals(ctx, req.(*DuesTotalsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RecordExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RecordExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RecordExpense(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/RecordExpense",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RecordExpense(ctx, req.(*RecordExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ApproveExpense_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ApproveExpenseRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ApproveExpense(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/ApproveExpense",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ApproveExpense(ctx, req.(*ApproveExpenseRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_RecordDonation_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(RecordDonationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).RecordDonation(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/RecordDonation",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).RecordDonation(ctx, req.(*RecordDonationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ReconcilePeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ReconcilePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ReconcilePeriod(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/ReconcilePeriod",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ReconcilePeriod(ctx, req.(*ReconcilePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _LedgerService_ClosePeriod_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) { //nolint:revive,errcheck // gRPC handler registration
	in := new(ClosePeriodRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LedgerServiceServer).ClosePeriod(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/koperasi.ledger.v1.LedgerService/ClosePeriod",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LedgerServiceServer).ClosePeriod(ctx, req.(*ClosePeriodRequest))
	}
	return interceptor(ctx, in, info, handler)
}
