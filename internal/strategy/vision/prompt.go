package vision

// BuildBoardingPassPrompt returns the extraction instructions sent with the
// image. The reply contract mirrors responseSchema: any deviation is
// discarded by the strategy, so the prompt is explicit about shape.
func BuildBoardingPassPrompt() string {
	return `You are a travel-document extraction assistant. Analyze the provided boarding pass image and extract its data.

IMPORTANT INSTRUCTIONS:
- Airport codes are 3-letter IATA codes in uppercase (e.g. "HYD", "EWR").
- Normalize the departure date to YYYY-MM-DD. If the year is absent, use the current year.
- Times are 24-hour "HH:MM" or 12-hour "H:MM AM/PM", exactly as printed.
- If the arrival date or flight duration requires timezone reasoning across the route, apply your best judgment; leave the field empty if unsure.
- Use an empty string for any field not present on the pass. Never invent values.

Return ONLY valid JSON with no markdown formatting, no code fences, no explanation — just the raw JSON object with these keys:
{
  "success": true,
  "confidence": 0.0,
  "errors": [],
  "flight_number": "",
  "airline": "",
  "passenger_name": "",
  "departure_code": "",
  "departure_city": "",
  "arrival_code": "",
  "arrival_city": "",
  "departure_date": "",
  "departure_time": "",
  "arrival_time": "",
  "gate": "",
  "terminal": "",
  "seat": "",
  "confirmation_code": "",
  "ticket_number": "",
  "boarding_time": "",
  "flight_duration": ""
}

"success" is false when the image is not a readable boarding pass; put the reasons in "errors". "confidence" is your overall confidence between 0.0 and 1.0.`
}
