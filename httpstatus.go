package openfigi

// httpStatusMap documents what the OpenFIGI service means by each error
// status. Used to enrich error logs; the client never acts on it.
var httpStatusMap = map[int]string{
	400: "Bad request. Invalid payload: mapping expects a JSON array, filter a plain JSON object.",
	401: "Unauthorized. Invalid API key.",
	404: "Invalid URL.",
	405: "Invalid HTTP method.",
	406: "Unsupported 'Accept' type.",
	413: "Payload too large. Too many mapping jobs in one request (> 10 without API key, > 100 with).",
	415: "Invalid 'Content-Type' header.",
	429: "Rate limit exceeded. Check X-RateLimit-Limit, X-RateLimit-Remaining and X-RateLimit-Reset headers.",
	500: "Internal server error.",
	503: "Service unavailable.",
}
