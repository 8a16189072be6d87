package consts

// Header keys masked before request details reach the access log.
var SensitiveKeys = []string{
	"Authorization",
	"X-Api-Key",
	"Cookie",
}
