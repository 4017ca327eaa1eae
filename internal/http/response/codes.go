package response

// 业务状态码，与 HTTP 语义对齐但始终随 200 返回。
const (
	CodeOK              = 0
	CodeBadRequest      = 400
	CodeUnauthorized    = 401
	CodeNotFound        = 404
	CodeTooManyRequests = 429
	CodeInternal        = 500
)
