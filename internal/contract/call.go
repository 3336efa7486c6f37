package contract

import "wxledger/internal/models"

// Call is one typed ledger operation. The set of implementations is closed;
// Dispatch switches over all of them.
type Call interface {
	Method() Method
	isCall()
}

type RecordPredictionResult struct {
	User      string
	Location  string
	IsCorrect bool
}

type GetUserAccuracy struct {
	User string
}

type GetLocationAccuracy struct {
	Location string
}

type AuthorizeOracle struct {
	Oracle models.Identity
}

type RevokeOracle struct {
	Oracle models.Identity
}

// AddWeatherData carries no timestamp: the record is stored at the block
// height current when the call executes.
type AddWeatherData struct {
	Location string
	Record   models.WeatherRecord
}

type GetWeatherData struct {
	Location  string
	Timestamp uint64
}

type IsAuthorizedOracle struct {
	Oracle models.Identity
}

func (RecordPredictionResult) Method() Method { return MethodRecordPredictionResult }
func (GetUserAccuracy) Method() Method        { return MethodGetUserAccuracy }
func (GetLocationAccuracy) Method() Method    { return MethodGetLocationAccuracy }
func (AuthorizeOracle) Method() Method        { return MethodAuthorizeOracle }
func (RevokeOracle) Method() Method           { return MethodRevokeOracle }
func (AddWeatherData) Method() Method         { return MethodAddWeatherData }
func (GetWeatherData) Method() Method         { return MethodGetWeatherData }
func (IsAuthorizedOracle) Method() Method     { return MethodIsAuthorizedOracle }

func (RecordPredictionResult) isCall() {}
func (GetUserAccuracy) isCall()        {}
func (GetLocationAccuracy) isCall()    {}
func (AuthorizeOracle) isCall()        {}
func (RevokeOracle) isCall()           {}
func (AddWeatherData) isCall()         {}
func (GetWeatherData) isCall()         {}
func (IsAuthorizedOracle) isCall()     {}
