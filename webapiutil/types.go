package webapiutil

import "time"

type ServerInfo struct {
	ServerTime       int64  `json:"servertime"`
	ServerTimeString string `json:"servertimestring"`
}

func (s ServerInfo) Time() time.Time {
	return time.Unix(s.ServerTime, 0).UTC()
}

type SupportedAPIList struct {
	APIList struct {
		Interfaces []APIInterface `json:"interfaces"`
	} `json:"apilist"`
}

type APIInterface struct {
	Name    string      `json:"name"`
	Methods []APIMethod `json:"methods"`
}

type APIMethod struct {
	Name       string     `json:"name"`
	Version    int        `json:"version"`
	HTTPMethod string     `json:"httpmethod"`
	Parameters []APIParam `json:"parameters"`
}

type APIParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Optional    bool   `json:"optional"`
	Description string `json:"description"`
}

// Method finds a method by interface and method name.
func (l SupportedAPIList) Method(iface, method string) (APIMethod, bool) {
	for _, i := range l.APIList.Interfaces {
		if i.Name != iface {
			continue
		}
		for _, m := range i.Methods {
			if m.Name == method {
				return m, true
			}
		}
	}
	return APIMethod{}, false
}
