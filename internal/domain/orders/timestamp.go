package orders

import (
	"strconv"
	"strings"
	"time"
)

// Formatos de fecha que llegan desde el store en registros sueltos.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp normaliza un timestamp suelto (epoch millis numérico,
// string de dígitos o ISO-8601) a time.Time. Nunca retorna error: un
// valor imparseable produce el tiempo cero, que aguas abajo se lee como
// "máximamente vencido" — el pedido con dato malo se muestra VENCIDO en
// vez de esconderse.
func ParseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case nil:
		return time.Time{}
	case time.Time:
		return t
	case int64:
		return fromMillis(t)
	case int:
		return fromMillis(int64(t))
	case float64:
		return fromMillis(int64(t))
	case string:
		return parseTimestampString(t)
	}
	return time.Time{}
}

func parseTimestampString(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return fromMillis(ms)
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func fromMillis(ms int64) time.Time {
	if ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}
