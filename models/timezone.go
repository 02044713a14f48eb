package models

// TimezoneResult describes the time zone in effect at a queried location.
// Offsets are in seconds; DstOffset is the daylight-savings component in
// effect at the queried timestamp.
type TimezoneResult struct {
	DstOffset    int    `json:"dstOffset"`
	RawOffset    int    `json:"rawOffset"`
	TimeZoneID   string `json:"timeZoneId"`
	TimeZoneName string `json:"timeZoneName"`
}
