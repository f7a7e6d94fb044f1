package errors

// pre-defined errors

// storage
var (
	StorageRecordDoesNotExist   = NewError(100, "record does not exist in storage")
	StorageRecordAlreadyExists  = NewError(101, "record already exists in storage")
	StorageCoreError            = NewError(102, "storage error")
	StorageNotInTransaction     = NewError(103, "storage is not in transaction")
	StorageAlreadyInTransaction = NewError(104, "storage is already in transaction")
	StorageInvalidConfig        = NewError(105, "invalid storage config")
)

// transaction and operation
var (
	BadPublicAddress                = NewError(120, "failed to parse public address")
	InvalidOperation                = NewError(121, "invalid operation")
	UnknownOperationType            = NewError(122, "unknown operation type")
	TransactionEmptyOperations      = NewError(123, "operations are empty")
	TransactionHasOverMaxOperations = NewError(124, "too many operations")
	DuplicatedOperation             = NewError(125, "has duplicated operations")
	InvalidHash                     = NewError(126, "hash does not match")
	SignatureVerificationFailed     = NewError(127, "signature verification failed")
	TransactionAlreadyExists        = NewError(128, "transaction already exists")
	TransactionDoesNotExist         = NewError(129, "transaction does not exist")
	InvalidVoteType                 = NewError(130, "invalid vote type")
	OperationBodyInsufficient       = NewError(131, "operation body insufficient")
	UnknownExecutor                 = NewError(132, "no executor for operation type")
)

// vote bank
var (
	VotingClosed          = NewError(140, "Voting is currently closed")
	AlreadyVoted          = NewError(141, "User has already voted")
	VoterListFull         = NewError(142, "voter list is full")
	VoteBankAlreadyExists = NewError(143, "vote bank already exists")
	VoteBankDoesNotExist  = NewError(144, "vote bank does not exist")
	InvalidVoteBankData   = NewError(145, "invalid vote bank data")
	UnknownVariant        = NewError(146, "unknown vote bank variant")
)

// api
var (
	BadRequestParameter    = NewError(160, "bad request parameter")
	ContentTypeNotJSON     = NewError(161, "`Content-Type` must be 'application/json'")
	HTTPCacheInvalidConfig = NewError(162, "invalid http cache config")
	TooManyRequests        = NewError(163, "too many requests")
	InvalidEndpoint        = NewError(164, "invalid endpoint")
	InvalidMessage         = NewError(165, "invalid message")
	ServerAlreadyRunning   = NewError(166, "server is already running")
)
