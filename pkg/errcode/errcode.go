package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	EnvFileError

	// Logging errors
	CreateLogFileError

	// Input errors
	InputEmptyError
	InvalidAccessionFormatError

	// Assembly errors
	MissingVersionTokenError

	// BioProject errors
	BioprojectFetchError
	MissingTaxonIDError
	TaxonomyFetchError
	TaxonomyNotFoundError

	// Remote source errors
	RemoteRequestError
	RemoteStatusError
	RemoteDecodeError

	// Output errors
	OutputFormatError
	OutputWriteError
)
