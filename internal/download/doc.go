package download

// Package download drives one remote download job at a time: it validates
// form input, submits the job to the backend, polls the status endpoint
// until the backend reports completion, and keeps the submit control in
// step with that lifecycle.
