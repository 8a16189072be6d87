package services

import (
	"fmt"
	"os"
	"path/filepath"

	"globe/machop_loan_ledger/configs"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
)

// SftpService pushes exported reports to the partner SFTP drop.
type SftpService struct {
}

func NewSftpService() *SftpService {
	return &SftpService{}
}

func (s *SftpService) sftpConnect() (*sftp.Client, error) {

	sshConfig := &ssh.ClientConfig{
		User: configs.SFTP_USER,
		Auth: []ssh.AuthMethod{
			ssh.Password(configs.SFTP_PASSWORD),
		},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
	}

	conn, err := ssh.Dial("tcp", fmt.Sprintf("%s:%s", configs.SFTP_HOST, configs.SFTP_PORT), sshConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH: %w", err)
	}

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create SFTP client: %w", err)
	}

	return client, nil
}

func (s *SftpService) UploadFileToSFTP(localFilePath, remoteFilePath string) error {
	client, err := s.sftpConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	remoteDir := filepath.Dir(remoteFilePath)
	if _, err := client.Stat(remoteDir); os.IsNotExist(err) {
		err = client.MkdirAll(remoteDir)
		if err != nil {
			return fmt.Errorf("failed to create directory on SFTP server: %v", err)
		}
	}

	localFile, err := os.Open(localFilePath)
	if err != nil {
		return fmt.Errorf("could not open local file: %v", err)
	}
	defer localFile.Close()

	remoteFile, err := client.Create(remoteFilePath)
	if err != nil {
		return fmt.Errorf("could not create remote file: %v", err)
	}
	defer remoteFile.Close()

	_, err = remoteFile.ReadFrom(localFile)
	if err != nil {
		return fmt.Errorf("could not upload file to SFTP server: %v", err)
	}

	return nil
}

func (s *SftpService) MoveFileOnSFTP(srcPath, destPath string) error {
	client, err := s.sftpConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	destDir := filepath.Dir(destPath)
	if _, err := client.Stat(destDir); os.IsNotExist(err) {
		err = client.MkdirAll(destDir)
		if err != nil {
			return fmt.Errorf("failed to create directory: %v", err)
		}
	}

	err = client.Rename(srcPath, destPath)
	if err != nil {
		return fmt.Errorf("failed to move file: %v", err)
	}

	return nil
}

func (s *SftpService) DeleteFileOnSFTP(filePath string) error {
	client, err := s.sftpConnect()
	if err != nil {
		return err
	}
	defer client.Close()

	err = client.Remove(filePath)
	if err != nil {
		return fmt.Errorf("failed to delete file on SFTP server: %v", err)
	}

	return nil
}

func (s *SftpService) DeleteLocalFile(filePath string) error {
	return os.Remove(filePath)
}
