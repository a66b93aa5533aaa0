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
	WriteFileError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBUnknownKindError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBDropTableError
	DBTransactionError
	DBQueryError
	DBEmptyDatabaseError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Load errors
	LoadUnknownFeedError
	LoadNoInputError
	LoadInputPatternError
	LoadDecodeError
	LoadResolveError
	LoadStrictAnomalyError
	LoadReplaceError
	LoadInsertError
	LoadCommitError
	LoadRunLogError

	// Optimize errors
	OptimizeVacuumError

	// Extract errors
	ExtractReadError
	ExtractRegionsError
	ExtractEncodeError
	ExtractWriteError
)
