package contract

type Method int

const (
	MethodRecordPredictionResult Method = iota + 1
	MethodGetUserAccuracy
	MethodGetLocationAccuracy
	MethodAuthorizeOracle
	MethodRevokeOracle
	MethodAddWeatherData
	MethodGetWeatherData
	MethodIsAuthorizedOracle
)

var methodNames = map[Method]string{
	MethodRecordPredictionResult: "record-prediction-result",
	MethodGetUserAccuracy:        "get-user-accuracy",
	MethodGetLocationAccuracy:    "get-location-accuracy",
	MethodAuthorizeOracle:        "authorize-oracle",
	MethodRevokeOracle:           "revoke-oracle",
	MethodAddWeatherData:         "add-weather-data",
	MethodGetWeatherData:         "get-weather-data",
	MethodIsAuthorizedOracle:     "is-authorized-oracle",
}

var methodsByName = func() map[string]Method {
	m := make(map[string]Method, len(methodNames))
	for method, name := range methodNames {
		m[name] = method
	}
	return m
}()

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// ReadOnly reports whether the method never changes ledger state.
func (m Method) ReadOnly() bool {
	switch m {
	case MethodGetUserAccuracy, MethodGetLocationAccuracy, MethodGetWeatherData, MethodIsAuthorizedOracle:
		return true
	}
	return false
}

func ParseMethod(name string) (Method, bool) {
	m, ok := methodsByName[name]
	return m, ok
}

// Methods lists every method in declaration order.
func Methods() []Method {
	result := make([]Method, 0, len(methodNames))
	for m := MethodRecordPredictionResult; m <= MethodIsAuthorizedOracle; m++ {
		result = append(result, m)
	}
	return result
}
