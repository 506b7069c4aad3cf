package web

type AuthURLReq struct {
	Provider string `json:"provider"`
}

type AuthURLResp struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

type CallbackReq struct {
	Provider string `json:"provider"`
	Code     string `json:"code"`
}

type SaveProfileReq struct {
	Timezone     string        `json:"timezone"`
	WorkingHours []WorkingHour `json:"workingHours"`
}

type WorkingHour struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Profile struct {
	Provider     string        `json:"provider"`
	Connected    bool          `json:"connected"`
	Timezone     string        `json:"timezone"`
	WorkingHours []WorkingHour `json:"workingHours"`
}
