package cli

import (
	"strings"

	"github.com/alexanderramin/timeledger/internal/domain"
	"github.com/spf13/pflag"
)

// eventKindValue is a --kind flag that only accepts known event kinds and
// their short aliases (in, out, pause, resume).
type eventKindValue struct {
	kind *domain.EventKind
}

var _ pflag.Value = eventKindValue{}

func newEventKindValue(kind *domain.EventKind) eventKindValue {
	return eventKindValue{kind: kind}
}

func (v eventKindValue) String() string {
	if v.kind == nil {
		return ""
	}
	return string(*v.kind)
}

func (v eventKindValue) Set(s string) error {
	k, err := domain.ParseEventKind(s)
	if err != nil {
		return err
	}
	*v.kind = k
	return nil
}

func (v eventKindValue) Type() string {
	names := make([]string, 0, len(domain.EventKinds))
	for _, k := range domain.EventKinds {
		names = append(names, string(k))
	}
	return strings.Join(names, "|")
}
