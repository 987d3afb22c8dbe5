package shop

import (
	"fmt"
	"net/url"
	"os"
)

const defaultPartnerID = "AF6363203"

// PartnerID returns the affiliate partner identifier, falling back to the
// built-in default when unconfigured.
func PartnerID() string {
	if id := os.Getenv("COUPANG_PARTNERS_ID"); id != "" {
		return id
	}
	return defaultPartnerID
}

// AffiliateURL builds the outbound partner link for a search keyword. The
// partner id sits in both the path and the lptag parameter; the keyword is
// percent-encoded into q. Total for any input string.
func AffiliateURL(keyword string) string {
	pid := PartnerID()
	return fmt.Sprintf(
		"https://link.coupang.com/a/%s?lptag=%s&subid=biff_travel&pageKey=0&traceid=V0-153&itemId=&vendorItemId=&q=%s",
		pid, pid, url.QueryEscape(keyword),
	)
}
