// Package result defines the closed error-code enumeration shared across
// the runtime, storage and geodesy packages in this module.
package result

import (
	"fmt"
	"runtime"
)

// Code is a closed enumeration of outcomes. The library packages report
// failures as a *Error wrapping one of these; the internal config, crypto
// and s3 helpers return plain wrapped errors instead.
type Code int

const (
	Success Code = iota
	Failure
	NothingToDo
	NotInitialized
	InvalidParameter
	MemoryAllocationFailure
	NotFound
	BufferTooSmall
	CorruptData
	InputExhausted
	OutputExhausted
	Timeout
	DecryptionKeyRequired
	DecryptionKeyMismatch
	SignatureMismatch
	OutOfOrder
	OutOfRange
	OpenFailure
	CloseFailure
	ReadFailure
	WriteFailure
	AuthError
	Pending
	Cancelled
	InvalidConfiguration
	CalledMoreThanOnce
	CountExceeded
	RateLimited
	ExceededAllowedLimit
	ObjectExpired
	SocketError
	InternalCryptoError
	ParseError
	FormatVariationNotSupported
	Unsupported
	InProgress
	ServerError
	NotAllowed
	InvalidLicense
	SessionExpired
	ProxyError
	ProxyAuthRequired
	InternalError
	OutstandingReferences
	ObjectTypeMismatch
	CompressionError
	AlignmentRequired
	ImageLoadFailure
	StreamerNotInitialised
	DatabaseError
	OutOfSync
	PremiumOnly
)

var names = map[Code]string{
	Success:                     "Success",
	Failure:                     "Failure",
	NothingToDo:                 "NothingToDo",
	NotInitialized:              "NotInitialized",
	InvalidParameter:            "InvalidParameter",
	MemoryAllocationFailure:     "MemoryAllocationFailure",
	NotFound:                    "NotFound",
	BufferTooSmall:              "BufferTooSmall",
	CorruptData:                 "CorruptData",
	InputExhausted:              "InputExhausted",
	OutputExhausted:             "OutputExhausted",
	Timeout:                     "Timeout",
	DecryptionKeyRequired:       "DecryptionKeyRequired",
	DecryptionKeyMismatch:       "DecryptionKeyMismatch",
	SignatureMismatch:           "SignatureMismatch",
	OutOfOrder:                  "OutOfOrder",
	OutOfRange:                  "OutOfRange",
	OpenFailure:                 "OpenFailure",
	CloseFailure:                "CloseFailure",
	ReadFailure:                 "ReadFailure",
	WriteFailure:                "WriteFailure",
	AuthError:                   "AuthError",
	Pending:                     "Pending",
	Cancelled:                   "Cancelled",
	InvalidConfiguration:        "InvalidConfiguration",
	CalledMoreThanOnce:          "CalledMoreThanOnce",
	CountExceeded:               "CountExceeded",
	RateLimited:                 "RateLimited",
	ExceededAllowedLimit:        "ExceededAllowedLimit",
	ObjectExpired:               "ObjectExpired",
	SocketError:                 "SocketError",
	InternalCryptoError:         "InternalCryptoError",
	ParseError:                  "ParseError",
	FormatVariationNotSupported: "FormatVariationNotSupported",
	Unsupported:                 "Unsupported",
	InProgress:                  "InProgress",
	ServerError:                 "ServerError",
	NotAllowed:                  "NotAllowed",
	InvalidLicense:              "InvalidLicense",
	SessionExpired:              "SessionExpired",
	ProxyError:                  "ProxyError",
	ProxyAuthRequired:           "ProxyAuthRequired",
	InternalError:               "InternalError",
	OutstandingReferences:       "OutstandingReferences",
	ObjectTypeMismatch:          "ObjectTypeMismatch",
	CompressionError:            "CompressionError",
	AlignmentRequired:           "AlignmentRequired",
	ImageLoadFailure:            "ImageLoadFailure",
	StreamerNotInitialised:      "StreamerNotInitialised",
	DatabaseError:               "DatabaseError",
	OutOfSync:                   "OutOfSync",
	PremiumOnly:                 "PremiumOnly",
}

func (c Code) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Error wraps a Code with the call site of the first failure and, when
// relevant, an underlying error it was translated from.
type Error struct {
	Code    Code
	File    string
	Line    int
	Wrapped error
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s (%s:%d): %v", e.Code, e.File, e.Line, e.Wrapped)
	}
	return fmt.Sprintf("%s (%s:%d)", e.Code, e.File, e.Line)
}

func (e *Error) Unwrap() error { return e.Wrapped }

// New captures the caller's file and line and returns an *Error for code.
func New(code Code) error {
	return newAt(code, nil, 2)
}

// Wrap captures the caller's file and line, attaching err as the cause.
func Wrap(code Code, err error) error {
	if err == nil {
		return New(code)
	}
	return newAt(code, err, 2)
}

func newAt(code Code, wrapped error, skip int) error {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "unknown", 0
	}
	return &Error{Code: code, File: file, Line: line, Wrapped: wrapped}
}

// Is reports whether err (or anything it wraps) carries code.
func Is(err error, code Code) bool {
	var re *Error
	for err != nil {
		if e, ok := err.(*Error); ok {
			re = e
			if re.Code == code {
				return true
			}
			err = e.Wrapped
			continue
		}
		break
	}
	return false
}

// CodeOf extracts the Code from err, or Failure if err is not a *Error.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	if err == nil {
		return Success
	}
	return Failure
}
