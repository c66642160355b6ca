package sql_test

import (
	"encoding/json"
	"time"

	"edudb-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Record", func() {
	ginkgo.Context("UnmarshalJSON", func() {
		ginkgo.It("keeps the key order of the document", func() {
			var record sql.Record
			err := json.Unmarshal([]byte(`{"name":"Ana","age":21,"gpa":3.5,"active":true,"notes":null}`), &record)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())

			gomega.Expect(record.Columns()).To(gomega.Equal([]string{"name", "age", "gpa", "active", "notes"}))
			gomega.Expect(record.Values()).To(gomega.Equal([]any{"Ana", int64(21), 3.5, true, nil}))
		})

		ginkgo.It("keeps the last value of a repeated key", func() {
			var record sql.Record
			gomega.Expect(json.Unmarshal([]byte(`{"age":20,"name":"Ana","age":21}`), &record)).To(gomega.Succeed())
			gomega.Expect(record.Columns()).To(gomega.Equal([]string{"age", "name"}))
			gomega.Expect(valueOf(record, "age")).To(gomega.Equal(int64(21)))
		})

		ginkgo.DescribeTable("rejects non scalar input",
			func(body string) {
				var record sql.Record
				err := json.Unmarshal([]byte(body), &record)
				gomega.Expect(err).To(gomega.MatchError(sql.ErrInvalidArgument))
			},
			ginkgo.Entry("array", `["Ana"]`),
			ginkgo.Entry("nested object", `{"name":{"first":"Ana"}}`),
			ginkgo.Entry("nested array", `{"tags":["a"]}`),
		)

		ginkgo.It("decodes an empty object to an empty record", func() {
			var record sql.Record
			gomega.Expect(json.Unmarshal([]byte(`{}`), &record)).To(gomega.Succeed())
			gomega.Expect(record).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("MarshalJSON", func() {
		ginkgo.It("writes fields in record order", func() {
			record := sql.Record{
				{Column: "id", Value: int64(17)},
				{Column: "name", Value: "Ana"},
				{Column: "enrolled_at", Value: time.Date(2024, 9, 1, 8, 0, 0, 0, time.UTC)},
				{Column: "email", Value: nil},
			}

			data, err := json.Marshal(record)
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(data)).To(gomega.Equal(`{"id":17,"name":"Ana","enrolled_at":"2024-09-01T08:00:00Z","email":null}`))
		})

		ginkgo.It("writes an empty object for an empty record", func() {
			data, err := json.Marshal(sql.Record{})
			gomega.Expect(err).NotTo(gomega.HaveOccurred())
			gomega.Expect(string(data)).To(gomega.Equal(`{}`))
		})
	})

	ginkgo.Context("Set", func() {
		ginkgo.It("replaces existing columns in place", func() {
			record := sql.Record{{Column: "a", Value: 1}, {Column: "b", Value: 2}}
			record = record.Set("a", 3).Set("c", 4)
			gomega.Expect(record.Columns()).To(gomega.Equal([]string{"a", "b", "c"}))
			gomega.Expect(record.Values()).To(gomega.Equal([]any{3, 2, 4}))
		})
	})
})
