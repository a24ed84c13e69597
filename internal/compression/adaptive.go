package compression

import (
	"strconv"
	"strings"
)

// fastDownlinkMbps is the self-reported downlink speed above which the level
// is relaxed by one.
const fastDownlinkMbps = 10

var mobileTokens = []string{"mobile", "android", "iphone", "ipad"}

// AdaptiveLevel biases the base compression level using client hints: mobile
// user agents get two levels more (bandwidth assumed scarcer than server CPU),
// and clients self-reporting a fast downlink get one level less. The Downlink
// header is a client hint most browsers never send, so that branch rarely
// fires. The result is clamped to the algorithm's valid range.
func AdaptiveLevel(base int, userAgent, downlink string, alg Algorithm) int {
	level := base

	ua := strings.ToLower(userAgent)
	for _, token := range mobileTokens {
		if strings.Contains(ua, token) {
			level += 2
			break
		}
	}

	if mbps, err := strconv.ParseFloat(strings.TrimSpace(downlink), 64); err == nil && mbps >= fastDownlinkMbps {
		level--
	}

	return ClampLevel(level, alg)
}
