// Package calendar собирает ссылки Google Calendar и содержимое ICS
// для запланированных собеседований.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const DefaultDuration = time.Hour

type Event struct {
	Title       string
	Description string
	Location    string
	StartTime   time.Time
	EndTime     time.Time // нулевое значение = час после начала
}

func (e Event) endOrDefault() time.Time {
	if e.EndTime.IsZero() {
		return e.StartTime.Add(DefaultDuration)
	}
	return e.EndTime
}

// formatStamp - формат YYYYMMDDTHHMMSSZ, общий для Google и ICS
func formatStamp(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// GoogleLink строит ссылку "добавить в Google Calendar". Часовой пояс
// события фиксируется на Europe/Moscow.
func GoogleLink(event Event) string {
	start := event.StartTime
	end := event.endOrDefault()

	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", event.Title)
	params.Set("details", event.Description)
	params.Set("location", event.Location)
	params.Set("dates", formatStamp(start)+"/"+formatStamp(end))
	params.Set("ctz", "Europe/Moscow")

	return "https://calendar.google.com/calendar/render?" + params.Encode()
}

// ICSContent собирает .ics-файл с одним событием
func ICSContent(event Event, now time.Time) string {
	start := event.StartTime
	end := event.endOrDefault()

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//SuperMock//Interview Calendar//EN",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		fmt.Sprintf("UID:%d@supermock", start.UnixMilli()),
		"DTSTAMP:" + formatStamp(now),
		"DTSTART:" + formatStamp(start),
		"DTEND:" + formatStamp(end),
		"SUMMARY:" + escapeText(event.Title),
		"DESCRIPTION:" + escapeText(event.Description),
		"LOCATION:" + escapeText(event.Location),
		"END:VEVENT",
		"END:VCALENDAR",
	}
	return strings.Join(lines, "\r\n")
}

// escapeText экранирует спецсимволы по RFC 5545
func escapeText(s string) string {
	r := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return r.Replace(s)
}
