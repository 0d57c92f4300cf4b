package models

// Meta is the envelope the API attaches to every response. Code is 200 on
// success; on failure ErrorType/ErrorDetail describe what went wrong, e.g.
//
//	{"code": 400, "errorType": "failed_geocode",
//	 "errorDetail": "Couldn't geocode param near: bursass", "requestId": "..."}
type Meta struct {
	Code        int    `json:"code"`
	RequestID   string `json:"requestId"`
	ErrorType   string `json:"errorType,omitempty"`
	ErrorDetail string `json:"errorDetail,omitempty"`
}
