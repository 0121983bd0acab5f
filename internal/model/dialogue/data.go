package dialogue

// FormData accumulates validated answers for exactly one workflow. The Birth
// and ID sides are mutually exclusive, discriminated by the session's Service.
// Fields only ever gain values between resets; blank values never overwrite.
type FormData struct {
	Birth *BirthCertificateData `json:"birth,omitempty"`
	ID    *IDAppointmentData    `json:"id,omitempty"`

	ReferenceNumber string   `json:"referenceNumber,omitempty"`
	DocumentsNote   string   `json:"documentsNote,omitempty"`
	UploadedFiles   []string `json:"uploadedFiles,omitempty"`
	PDFPath         string   `json:"pdfPath,omitempty"`
}

// BirthCertificateData holds the answers gathered by the birth registration
// branch. DateOfBirth stays in the raw DD/MM/YYYY form the user supplied.
type BirthCertificateData struct {
	ChildName   string `json:"childName,omitempty"`
	DateOfBirth string `json:"dateOfBirth,omitempty"`
	Sex         string `json:"sex,omitempty"`
	FatherName  string `json:"fatherName,omitempty"`
	MotherName  string `json:"motherName,omitempty"`
	PrintOption string `json:"printOption,omitempty"`
}

// IDAppointmentData holds the answers gathered by the ID booking branch.
// Age stays a raw string until the engine validates it against the minimum.
type IDAppointmentData struct {
	Age             string `json:"age,omitempty"`
	HasPreviousID   *bool  `json:"hasPreviousId,omitempty"`
	SlotChoice      string `json:"slotChoice,omitempty"`
	AppointmentDate string `json:"appointmentDate,omitempty"`
	AppointmentTime string `json:"appointmentTime,omitempty"`
}

// EnsureBirth lazily allocates the birth side.
func (d *FormData) EnsureBirth() *BirthCertificateData {
	if d.Birth == nil {
		d.Birth = &BirthCertificateData{}
	}
	return d.Birth
}

// EnsureID lazily allocates the ID side.
func (d *FormData) EnsureID() *IDAppointmentData {
	if d.ID == nil {
		d.ID = &IDAppointmentData{}
	}
	return d.ID
}
