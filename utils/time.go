package utils

import (
	"log"
	"time"
)

// SetLocalZone выставляет time.Local для логов и дат на страницах
func SetLocalZone(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		// Если не удалось загрузить часовой пояс, используем UTC+3
		log.Printf("unknown time zone %q, using UTC+3", name)
		loc = time.FixedZone("MSK", 3*60*60)
	}
	time.Local = loc
	return loc
}
