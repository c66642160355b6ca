package sql_test

import (
	"testing/fstest"

	"edudb-server/internal/infra/sql"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("ParseScript", func() {
	const script = `-- header comment
CREATE TABLE a (id INTEGER); -- trailing comment
;;
INSERT INTO a VALUES (1);

   INSERT INTO a VALUES (2)
`

	ginkgo.It("strips comments and drops empty fragments", func() {
		statements := sql.ParseScript(script, sql.ParseOptions{StripComments: true})
		gomega.Expect(statements).To(gomega.Equal([]string{
			"CREATE TABLE a (id INTEGER)",
			"INSERT INTO a VALUES (1)",
			"INSERT INTO a VALUES (2)",
		}))
	})

	ginkgo.It("keeps comment text when not asked to strip it", func() {
		statements := sql.ParseScript(script, sql.ParseOptions{})
		gomega.Expect(statements).To(gomega.HaveLen(4))
		gomega.Expect(statements[0]).To(gomega.HavePrefix("-- header comment"))
		gomega.Expect(statements[1]).To(gomega.Equal("-- trailing comment"))
	})

	ginkgo.It("returns nothing for blank scripts", func() {
		gomega.Expect(sql.ParseScript(" \n -- only a comment\n", sql.ParseOptions{StripComments: true})).To(gomega.BeEmpty())
	})
})

var _ = ginkgo.Describe("LoadScript", func() {
	fsys := fstest.MapFS{
		"init_db.sql": &fstest.MapFile{Data: []byte("CREATE TABLE a (id INTEGER);")},
	}

	ginkgo.It("reads a named script", func() {
		script, err := sql.LoadScript(fsys, "init_db.sql")
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		gomega.Expect(script.Name).To(gomega.Equal("init_db.sql"))
		gomega.Expect(script.Text).To(gomega.Equal("CREATE TABLE a (id INTEGER);"))
	})

	ginkgo.It("fails for missing scripts", func() {
		_, err := sql.LoadScript(fsys, "reset_db.sql")
		gomega.Expect(err).To(gomega.HaveOccurred())
	})
})
