// Package device generates spoofed mobile-app installations: the headers and
// OAuth client id a genuine Android or iOS client would present to the
// identity service.
package device

import (
	"net/http"
)

// Platform tags which mobile client a Profile impersonates.
type Platform int

const (
	Android Platform = iota
	IOS
)

func (p Platform) String() string {
	switch p {
	case Android:
		return "android"
	case IOS:
		return "ios"
	default:
		return "unknown"
	}
}

// OAuth client ids baked into the official apps.
const (
	AndroidOAuthClientID = "ohXpoqrZYub1kg"
	IOSOAuthClientID     = "LNDo9k1o8UAEUw"
)

// Header names presented by the mobile apps.
const (
	HeaderClientVendorID = "Client-Vendor-Id"
	HeaderDeviceID       = "X-Reddit-Device-Id"
	HeaderUserAgent      = "User-Agent"
	HeaderDeviceName     = "Device-Name"
	HeaderDPR            = "X-Reddit-DPR"
)

// iosDPR is the display density every iOS profile reports.
const iosDPR = "2"

// AndroidUserAgents carry build numbers from real APK variants.
var AndroidUserAgents = [...]string{
	"Reddit/Version 2023.21.0/Build 956283/Android 13",
	"Reddit/Version 2023.21.0/Build 968223/Android 10",
	"Reddit/Version 2023.21.0/Build 946732/Android 12",
}

var IOSUserAgents = [...]string{
	"Reddit/Version 2023.22.0/Build 613580/iOS Version 17.0 (Build 21A5248V)",
	"Reddit/Version 2023.22.0/Build 613580/iOS Version 16.0 (Build 20A5328h)",
	"Reddit/Version 2023.22.0/Build 613580/iOS Version 16.5",
}

// IOSModels are hardware identifiers; an iPhone 11 reports "iPhone12,1".
var IOSModels = [...]string{"iPhone8,1", "iPhone11,1", "iPhone12,1", "iPhone13,1", "iPhone14,1"}

// Profile is one spoofed installation. It is immutable once generated.
type Profile struct {
	Platform      Platform
	OAuthClientID string
	DeviceID      string
	UserAgent     string
	Model         string // iOS only
}

// Headers returns a fresh copy of the headers the app sends on every request.
func (p *Profile) Headers() http.Header {
	h := http.Header{}
	h.Set(HeaderClientVendorID, p.DeviceID)
	h.Set(HeaderDeviceID, p.DeviceID)
	h.Set(HeaderUserAgent, p.UserAgent)
	if p.Platform == IOS {
		h.Set(HeaderDeviceName, p.Model)
		h.Set(HeaderDPR, iosDPR)
	}
	return h
}
