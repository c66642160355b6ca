package node_test

import (
	"edudb-server/internal/infra/node"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
)

var _ = ginkgo.Describe("Node", func() {
	ginkgo.Context("GetNodeInfo", func() {
		ginkgo.It("should return node information with all fields", func() {
			nodeInfo := node.GetNodeInfo()

			gomega.Expect(nodeInfo).ToNot(gomega.BeNil())
			gomega.Expect(nodeInfo.ID).To(gomega.HaveLen(36))
			gomega.Expect(nodeInfo.Hostname).ToNot(gomega.BeEmpty())
			gomega.Expect(nodeInfo.Version).To(gomega.Equal("development"))
			gomega.Expect(nodeInfo.CommitHash).ToNot(gomega.BeEmpty())
		})

		ginkgo.It("should keep the same identity across calls", func() {
			first := node.GetNodeInfo()
			second := node.GetNodeInfo()

			gomega.Expect(first.ID).To(gomega.Equal(second.ID))
			gomega.Expect(first.Hostname).To(gomega.Equal(second.Hostname))
		})
	})
})
