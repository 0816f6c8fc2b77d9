// Package responses builds the bodies the legacy Boxee clients expect.
// Every generator is a pure function of its arguments; none of them escape caller input.
package responses

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/blogem/boxee-legacy-api/models"
)

const (
	ContentTypeText = "text/plain; charset=utf-8"
	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeXML  = "text/xml; charset=utf-8"
)

// FeaturedMessages is the number of entries in the featured feed
const FeaturedMessages = 5

// Body is a generated response
type Body struct {
	ContentType string
	Content     string
}

// UpdateDescriptor describes the OS image offered by the firmware check
type UpdateDescriptor struct {
	Build string
	URL   string
	MD5   string
}

type pingData struct {
	Version   string
	Timestamp int64
	Update    UpdateDescriptor
}

type featuredMessage struct {
	Index     int
	Timestamp int64
}

type featuredData struct {
	Timestamp int64
	Messages  []featuredMessage
}

// Status returns "OK <unix time>"
func Status(now time.Time) Body {
	return Body{ContentType: ContentTypeText, Content: fmt.Sprintf("OK %d", now.Unix())}
}

// Pong answers the N.ping hosts
func Pong() Body {
	return Body{ContentType: ContentTypeHTML, Content: "pong"}
}

// DevicePing echoes the client's ping version with the server time
func DevicePing(version string, now time.Time) Body {
	return xmlBody(devicePingTmpl, pingData{Version: version, Timestamp: now.Unix()})
}

// FirmwareCheck answers chkupd/ping without offering an update
func FirmwareCheck(version string, now time.Time) Body {
	return DevicePing(version, now)
}

// FirmwareUpdate answers chkupd/ping with the upgrade image descriptor
func FirmwareUpdate(version string, update UpdateDescriptor, now time.Time) Body {
	return xmlBody(firmwareUpdateTmpl, pingData{Version: version, Timestamp: now.Unix(), Update: update})
}

// Login returns the fixed user profile
func Login() Body {
	return Body{ContentType: ContentTypeXML, Content: loginDocument}
}

// Featured returns the featured feed with FeaturedMessages entries
func Featured(now time.Time) Body {
	data := featuredData{Timestamp: now.Unix()}
	for i := 1; i <= FeaturedMessages; i++ {
		data.Messages = append(data.Messages, featuredMessage{Index: i, Timestamp: now.Unix()})
	}
	return xmlBody(featuredTmpl, data)
}

// AppIndex returns the single installable application
func AppIndex() Body {
	return Body{ContentType: ContentTypeXML, Content: appIndexDocument}
}

// LedgerDump renders one line per ledger row
func LedgerDump(rows []models.TrackedRequest) Body {
	var b strings.Builder
	for _, row := range rows {
		b.WriteString(row.String())
		b.WriteByte('\n')
	}
	return Body{ContentType: ContentTypeText, Content: b.String()}
}

// RecentIPs renders the distinct address report
func RecentIPs(report *models.RecentIPReport) Body {
	content := fmt.Sprintf("Total IPs: %d\n\n", report.Total()) + strings.Join(report.Addresses, "\n")
	return Body{ContentType: ContentTypeText, Content: content}
}

// xmlBody executes an XML template. The templates are package constants and their
// data holds only strings and ints, so execution cannot fail at runtime.
func xmlBody(tmpl *template.Template, data interface{}) Body {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("responses: executing %s: %v", tmpl.Name(), err))
	}
	return Body{ContentType: ContentTypeXML, Content: buf.String()}
}
