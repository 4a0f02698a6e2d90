package errors

import (
	"fmt"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// errorDomain marks ErrorInfo details produced by the rooms service
const errorDomain = "rooms.rpg-rooms"

var grpcCodes = map[Code]codes.Code{
	CodeOK:                 codes.OK,
	CodeCanceled:           codes.Canceled,
	CodeInvalidArgument:    codes.InvalidArgument,
	CodeDeadlineExceeded:   codes.DeadlineExceeded,
	CodeNotFound:           codes.NotFound,
	CodeAlreadyExists:      codes.AlreadyExists,
	CodePermissionDenied:   codes.PermissionDenied,
	CodeResourceExhausted:  codes.ResourceExhausted,
	CodeFailedPrecondition: codes.FailedPrecondition,
	CodeOutOfRange:         codes.OutOfRange,
	CodeUnimplemented:      codes.Unimplemented,
	CodeInternal:           codes.Internal,
	CodeUnavailable:        codes.Unavailable,
	CodeUnauthenticated:    codes.Unauthenticated,
}

var fromGRPCCodes = func() map[codes.Code]Code {
	m := make(map[codes.Code]Code, len(grpcCodes))
	for c, g := range grpcCodes {
		m[g] = c
	}
	return m
}()

// GRPCCode maps c onto its gRPC status code. Unknown codes map to Unknown.
func (c Code) GRPCCode() codes.Code {
	if g, ok := grpcCodes[c]; ok {
		return g
	}
	return codes.Unknown
}

// ToGRPCError turns err into a status error. An *Error keeps its code as the
// ErrorInfo reason and its metadata stringified, and the status message
// carries the whole cause chain. Status errors pass through and anything
// else is Internal.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	e, ok := find(err)
	if !ok {
		return status.Error(codes.Internal, err.Error())
	}

	info := &errdetails.ErrorInfo{Reason: string(e.Code), Domain: errorDomain}
	if len(e.Meta) > 0 {
		info.Metadata = make(map[string]string, len(e.Meta))
		for k, v := range e.Meta {
			info.Metadata[k] = fmt.Sprint(v)
		}
	}

	st := status.New(e.Code.GRPCCode(), chainMessage(e))
	if detailed, detailErr := st.WithDetails(info); detailErr == nil {
		st = detailed
	}
	return st.Err()
}

// chainMessage joins the messages down the cause chain without the code
// prefixes Error() adds, e.g. "failed to add template: room template already exists".
func chainMessage(e *Error) string {
	parts := make([]string, 0, 2)
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	for cause := e.Cause; cause != nil; {
		inner, ok := cause.(*Error)
		if !ok {
			parts = append(parts, cause.Error())
			break
		}
		if inner.Message != "" {
			parts = append(parts, inner.Message)
		}
		cause = inner.Cause
	}
	return strings.Join(parts, ": ")
}

// FromGRPCError rebuilds an *Error from a status error returned by a rooms
// server. Metadata values come back as strings.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	code, known := fromGRPCCodes[st.Code()]
	if !known || code == CodeOK {
		code = CodeInternal
	}
	out := &Error{Code: code, Message: st.Message()}

	for _, detail := range st.Details() {
		info, isInfo := detail.(*errdetails.ErrorInfo)
		if !isInfo || info.GetDomain() != errorDomain {
			continue
		}
		if reason := info.GetReason(); reason != "" {
			out.Code = Code(reason)
		}
		for k, v := range info.GetMetadata() {
			out.WithMeta(k, v)
		}
		break
	}
	return out
}
