package main

// practitionerID maps a PPM practitioner display name to the Nookal
// practitioner it blocks time for. Lookup is exact and case-sensitive;
// unknown names (including the "Not specified" fallback) land on the
// default practitioner so the appointment is never dropped.
func (config *Config) practitionerID(practitionerName string) string {
	if id, ok := config.Practitioners[practitionerName]; ok {
		return id
	}
	return config.DefaultPractitionerID
}
